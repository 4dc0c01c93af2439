package stock

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"warehouse.GO/model/entity"
)

// ErrInsufficientStock is returned when a conditional decrement finds
// less stock on hand than the availability rule allows.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrUnknownArticle is returned when a ledger mutation targets an article
// that does not exist.
var ErrUnknownArticle = errors.New("unknown article")

// Increase adds qty to an article's on-hand quantity. Called only from
// cargo/shipment lifecycle transitions, inside their transaction.
func Increase(tx *gorm.DB, article uint, qty int) error {
	res := tx.Model(&entity.Stock{}).
		Where("article = ?", article).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("increase article %d: %w", article, ErrUnknownArticle)
	}
	return nil
}

// Decrease subtracts qty from an article's on-hand quantity, but only if
// quantity > qty still holds at update time (the availability rule is a
// strict inequality). The conditional update makes the reservation atomic:
// two overlapping approvals cannot both pass the check and oversell.
func Decrease(tx *gorm.DB, article uint, qty int) error {
	res := tx.Model(&entity.Stock{}).
		Where("article = ? AND quantity > ?", article, qty).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("decrease article %d by %d: %w", article, qty, ErrInsufficientStock)
	}
	return nil
}
