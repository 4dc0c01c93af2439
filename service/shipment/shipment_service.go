package shipment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"warehouse.GO/config"
	"warehouse.GO/model/entity"
	shipmentRepo "warehouse.GO/model/repository/shipment"
	actionlogService "warehouse.GO/service/actionlog"
	"warehouse.GO/service/notifier"
	stockService "warehouse.GO/service/stock"
)

var (
	// ErrShipmentNotFound is the single generic failure for redemption:
	// unknown token and wrong-status shipments are indistinguishable to
	// the caller on purpose.
	ErrShipmentNotFound = errors.New("shipment not found")

	ErrInvalidTransition = errors.New("invalid shipment status transition")
	ErrNoLines           = errors.New("shipment needs at least one line")
	ErrCustomerRequired  = errors.New("customer id or new customer data required")
)

// AvailabilityError reports which articles failed the strict
// quantity > requested availability check.
type AvailabilityError struct {
	Articles []uint
}

func (e *AvailabilityError) Error() string {
	return fmt.Sprintf("insufficient stock for articles %v", e.Articles)
}

func (e *AvailabilityError) Unwrap() error {
	return stockService.ErrInsufficientStock
}

// LineInput is one (article, quantity) pair in an order submission.
type LineInput struct {
	Article  uint `json:"article" validate:"required"`
	Quantity int  `json:"quantity" validate:"required,gt=0"`
}

// CustomerInput holds inline customer data for the public order flow.
type CustomerInput struct {
	FullName    string `json:"full_name" validate:"required,max=80"`
	PhoneNumber string `json:"phone_number" validate:"max=20"`
	Email       string `json:"email" validate:"required,email"`
	ContactInfo string `json:"contact_info"`
}

// CreateInput is an order submission: an existing customer or a new one,
// plus at least one line.
type CreateInput struct {
	CustomerID  uint           `json:"customer_id"`
	NewCustomer *CustomerInput `json:"new_customer"`
	Lines       []LineInput    `json:"lines" validate:"required,min=1,dive"`
}

type ShipmentService struct {
	db       *gorm.DB
	repo     *shipmentRepo.ShipmentRepository
	notifier notifier.Notifier

	// BaseURL and AdminEmail come from config; tests override them.
	BaseURL    string
	AdminEmail string

	// Attach renders the confirmation link into message attachments
	// (e.g. a scannable image). Nil means no attachments.
	Attach func(link string) []notifier.Attachment
}

func NewShipmentService(db *gorm.DB, n notifier.Notifier) (*ShipmentService, error) {
	repo, err := shipmentRepo.NewShipmentRepository(db)
	if err != nil {
		return nil, err
	}
	s := &ShipmentService{db: db, repo: repo, notifier: n}
	if config.AppConfig != nil {
		s.BaseURL = config.AppConfig.BaseURL
		s.AdminEmail = config.AppConfig.AdminEmail
	}
	return s, nil
}

// coalesceLines merges duplicate articles by summing their quantities,
// preserving first-seen order.
func coalesceLines(lines []LineInput) []LineInput {
	index := make(map[uint]int, len(lines))
	out := make([]LineInput, 0, len(lines))
	for _, l := range lines {
		if i, ok := index[l.Article]; ok {
			out[i].Quantity += l.Quantity
			continue
		}
		index[l.Article] = len(out)
		out = append(out, l)
	}
	return out
}

// Create places an order: status CREATED, no stock touched yet. When
// NewCustomer is set a customer row is created in the same transaction.
func (s *ShipmentService) Create(in CreateInput) (*entity.Shipment, error) {
	if len(in.Lines) == 0 {
		return nil, ErrNoLines
	}
	if in.CustomerID == 0 && in.NewCustomer == nil {
		return nil, ErrCustomerRequired
	}
	lines := coalesceLines(in.Lines)

	var (
		sh          *entity.Shipment
		newCustomer *entity.Customer
	)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var customer entity.Customer
		if in.NewCustomer != nil {
			customer = entity.Customer{
				FullName:    in.NewCustomer.FullName,
				PhoneNumber: in.NewCustomer.PhoneNumber,
				Email:       in.NewCustomer.Email,
			}
			if in.NewCustomer.ContactInfo != "" {
				ci := in.NewCustomer.ContactInfo
				customer.ContactInfo = &ci
			}
			if err := tx.Create(&customer).Error; err != nil {
				return err
			}
			newCustomer = &customer
		} else {
			if err := tx.First(&customer, in.CustomerID).Error; err != nil {
				return fmt.Errorf("customer %d: %w", in.CustomerID, err)
			}
		}

		sh = &entity.Shipment{CustomerID: customer.ID, Status: entity.ShipmentCreated}
		if err := tx.Create(sh).Error; err != nil {
			return err
		}
		for _, l := range lines {
			var st entity.Stock
			if err := tx.First(&st, "article = ?", l.Article).Error; err != nil {
				return fmt.Errorf("article %d: %w", l.Article, err)
			}
			row := entity.ShipmentStock{ShipmentID: sh.ID, StockArticle: l.Article, Quantity: l.Quantity}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			sh.Lines = append(sh.Lines, row)
		}
		sh.Customer = &customer
		return nil
	})
	if err != nil {
		return nil, err
	}

	if newCustomer != nil {
		actionlogService.Record(s.db, entity.Customer{}.TableName(), newCustomer.String(), entity.ActionCreate)
	}
	actionlogService.Record(s.db, entity.Shipment{}.TableName(), sh.String(), entity.ActionCreate)
	for _, l := range sh.Lines {
		actionlogService.Record(s.db, entity.ShipmentStock{}.TableName(), l.String(), entity.ActionCreate)
	}
	return sh, nil
}

// newToken builds the confirmation token: shipment id concatenated with a
// freshly generated UUID.
func newToken(shipmentID uint) string {
	return fmt.Sprintf("%d%s", shipmentID, uuid.NewString())
}

// Approve transitions CREATED -> SENT: reserves stock for every line,
// generates the confirmation token and emails the customer.
//
// The availability rule is strict: every line needs quantity > requested.
// Reservation is all-or-nothing; any failing line rolls the whole
// transaction back. After the reservation is committed a notification
// failure does NOT undo it: the shipment stays SENT with notified_at
// unset and the retry job re-sends later. The second return value
// reports whether the customer was notified.
func (s *ShipmentService) Approve(id uint) (*entity.Shipment, bool, error) {
	sh, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrShipmentNotFound
		}
		return nil, false, err
	}
	if sh.Status != entity.ShipmentCreated {
		return nil, false, fmt.Errorf("approve shipment %d in status %s: %w", id, sh.Status, ErrInvalidTransition)
	}

	// Pre-check so the caller sees every failing article at once. The
	// conditional decrements below re-check atomically.
	var failing []uint
	for _, l := range sh.Lines {
		if l.Stock == nil || l.Stock.Quantity <= l.Quantity {
			failing = append(failing, l.StockArticle)
		}
	}
	if len(failing) > 0 {
		return nil, false, &AvailabilityError{Articles: failing}
	}

	token := newToken(sh.ID)
	var raceFailed []uint
	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, l := range sh.Lines {
			if err := stockService.Decrease(tx, l.StockArticle, l.Quantity); err != nil {
				if errors.Is(err, stockService.ErrInsufficientStock) {
					raceFailed = append(raceFailed, l.StockArticle)
				}
				return err
			}
		}
		res := tx.Model(&entity.Shipment{}).
			Where("id = ? AND status = ?", id, entity.ShipmentCreated).
			Updates(map[string]interface{}{
				"status":             entity.ShipmentSent,
				"confirmation_token": token,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("approve shipment %d: %w", id, ErrInvalidTransition)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, stockService.ErrInsufficientStock) {
			// Lost a race after the pre-check; report it the same way.
			return nil, false, &AvailabilityError{Articles: raceFailed}
		}
		return nil, false, err
	}

	sh.Status = entity.ShipmentSent
	sh.ConfirmationToken = &token
	actionlogService.Record(s.db, entity.Shipment{}.TableName(), sh.String(), entity.ActionUpdate)

	notified := s.notifyCustomer(sh) == nil
	if notified {
		now := time.Now()
		sh.NotifiedAt = &now
		s.db.Model(&entity.Shipment{}).Where("id = ?", id).Update("notified_at", now)
	}
	return sh, notified, nil
}

// Cancel transitions CREATED or SENT to CANCELLED. Cancelling a SENT
// shipment restores the reserved stock in the same transaction;
// cancelling a CREATED one changes no stock. Terminal states are
// rejected.
func (s *ShipmentService) Cancel(id uint) (*entity.Shipment, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var sh entity.Shipment
		if err := tx.First(&sh, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrShipmentNotFound
			}
			return err
		}

		switch sh.Status {
		case entity.ShipmentCreated:
			// Nothing was reserved yet.
		case entity.ShipmentSent:
			var lines []entity.ShipmentStock
			if err := tx.Find(&lines, "shipment_id = ?", id).Error; err != nil {
				return err
			}
			for _, l := range lines {
				if err := stockService.Increase(tx, l.StockArticle, l.Quantity); err != nil {
					return err
				}
			}
		default:
			return fmt.Errorf("cancel shipment %d in status %s: %w", id, sh.Status, ErrInvalidTransition)
		}

		res := tx.Model(&entity.Shipment{}).
			Where("id = ? AND status = ?", id, sh.Status).
			Update("status", entity.ShipmentCancelled)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("cancel shipment %d: %w", id, ErrInvalidTransition)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sh, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	actionlogService.Record(s.db, entity.Shipment{}.TableName(), sh.String(), entity.ActionUpdate)
	return sh, nil
}

func (s *ShipmentService) Get(id uint) (*entity.Shipment, error) {
	sh, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShipmentNotFound
		}
		return nil, err
	}
	return sh, nil
}

func (s *ShipmentService) List(page, pageSize int) ([]entity.Shipment, error) {
	return s.repo.List(page, pageSize)
}

// Total returns the monetary value of a shipment.
func (s *ShipmentService) Total(id uint) (float64, error) {
	return s.repo.Total(id)
}

func (s *ShipmentService) confirmationLink(token string) string {
	return strings.TrimRight(s.BaseURL, "/") + "/confirm/" + token
}
