package billing

import (
	"fmt"
	"time"

	"shop-backoffice-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	numberRetries = 3
	retryBackoff  = 500 * time.Millisecond
)

// NextInvoiceNumber hands out the next number in the sequence, retrying a
// small fixed number of times on transient failure. Numbers are unique,
// monotonic and never reused; exhausting the retries is a fatal creation
// error.
func (s *Service) NextInvoiceNumber() (string, error) {
	var lastErr error
	for attempt := 0; attempt < numberRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(retryBackoff)
		}
		number, err := s.nextNumber()
		if err == nil {
			return number, nil
		}
		lastErr = err
		s.log.WithField("attempt", attempt+1).Warnf("invoice number generation failed: %v", err)
	}
	return "", &PersistenceError{Op: "generate invoice number", Err: lastErr}
}

func (s *Service) nextNumber() (string, error) {
	var number string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var seq models.InvoiceSequence
		q := tx
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := q.First(&seq, "id = ?", 1).Error; err == gorm.ErrRecordNotFound {
			seq = models.InvoiceSequence{ID: 1}
			if err := tx.Create(&seq).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		seq.LastValue++
		if err := tx.Model(&models.InvoiceSequence{}).
			Where("id = ?", seq.ID).
			Update("last_value", seq.LastValue).Error; err != nil {
			return err
		}

		number = fmt.Sprintf("INV-%06d", seq.LastValue)
		return nil
	})
	return number, err
}
