package shipment

import (
	"fmt"
	"time"

	"warehouse.GO/config"
	"warehouse.GO/model/entity"
	actionlogService "warehouse.GO/service/actionlog"
	"warehouse.GO/service/notifier"
)

// Redeem finalizes a delivery: the customer presents the confirmation
// token, and iff a shipment with that token is currently SENT it becomes
// DONE. Any other case (unknown token, shipment already DONE or
// CANCELLED, still CREATED) reports the same generic not-found error, so
// a second redemption of the same token fails and nothing is processed
// twice. The conditional update makes the transition atomic.
func (s *ShipmentService) Redeem(token string) (*entity.Shipment, error) {
	if token == "" {
		return nil, ErrShipmentNotFound
	}

	res := s.db.Model(&entity.Shipment{}).
		Where("confirmation_token = ? AND status = ?", token, entity.ShipmentSent).
		Update("status", entity.ShipmentDone)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrShipmentNotFound
	}

	sh, err := s.repo.FindByToken(token)
	if err != nil {
		return nil, err
	}
	actionlogService.Record(s.db, entity.Shipment{}.TableName(), sh.String(), entity.ActionUpdate)

	// Delivery succeeded either way; a failed admin mail is only logged.
	if err := s.notifyAdmin(sh); err != nil {
		config.LogError(config.GetLogger(), "shipment", "Redeem", fmt.Sprintf("shipment %d", sh.ID), err)
	}
	return sh, nil
}

// notifyCustomer emails the confirmation link to the shipment's customer.
func (s *ShipmentService) notifyCustomer(sh *entity.Shipment) error {
	if sh.ConfirmationToken == nil {
		return fmt.Errorf("shipment %d has no confirmation token", sh.ID)
	}
	customer := sh.Customer
	if customer == nil {
		var c entity.Customer
		if err := s.db.First(&c, sh.CustomerID).Error; err != nil {
			return err
		}
		customer = &c
	}

	link := s.confirmationLink(*sh.ConfirmationToken)
	msg := notifier.Message{
		To:      customer.Email,
		Subject: "Confirm receipt of your order",
		TextBody: fmt.Sprintf(
			"Your order has been dispatched. Once you receive it, confirm delivery here: %s", link),
		HTMLBody: fmt.Sprintf(
			`<p>Your order has been dispatched.</p><p>Once you receive it, confirm delivery <a href="%s">here</a>.</p>`, link),
	}
	if s.Attach != nil {
		msg.Attachments = s.Attach(link)
	}
	return s.notifier.Send(msg)
}

// notifyAdmin tells the administrative address that a shipment was
// delivered, with a link to the record.
func (s *ShipmentService) notifyAdmin(sh *entity.Shipment) error {
	if s.AdminEmail == "" {
		return nil
	}
	link := fmt.Sprintf("%s/api/shipments/%d", s.BaseURL, sh.ID)
	return s.notifier.Send(notifier.Message{
		To:       s.AdminEmail,
		Subject:  "Shipment delivered",
		TextBody: fmt.Sprintf("Shipment %d was confirmed by the customer. Record: %s", sh.ID, link),
	})
}

// ResendPending re-sends the confirmation email for SENT shipments whose
// first notification failed. Returns how many went out. Run by the cron
// retry job.
func (s *ShipmentService) ResendPending() (int, error) {
	pending, err := s.repo.ListPendingNotification()
	if err != nil {
		return 0, err
	}
	sent := 0
	for i := range pending {
		sh := &pending[i]
		if err := s.notifyCustomer(sh); err != nil {
			config.LogError(config.GetLogger(), "shipment", "ResendPending", fmt.Sprintf("shipment %d", sh.ID), err)
			continue
		}
		now := time.Now()
		if err := s.db.Model(&entity.Shipment{}).Where("id = ?", sh.ID).Update("notified_at", now).Error; err != nil {
			return sent, err
		}
		sent++
	}
	return sent, nil
}
