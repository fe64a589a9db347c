package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"TradingHours/internal/domain/models"
	drepo "TradingHours/internal/domain/repository"

	"github.com/go-playground/validator/v10"
)

// FileRoster reads subscribers from a JSON array on disk.
type FileRoster struct {
	path     string
	validate *validator.Validate
}

var _ drepo.RosterSource = (*FileRoster)(nil)

func NewFileRoster(path string) *FileRoster {
	return &FileRoster{path: path, validate: validator.New()}
}

func (r *FileRoster) Path() string { return r.path }

// Load reads the whole file; a missing file, bad JSON or any invalid record is an error.
func (r *FileRoster) Load(ctx context.Context) ([]models.Subscriber, error) {
	b, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read roster %s: %w", r.path, err)
	}

	var subs []models.Subscriber
	if err := json.Unmarshal(b, &subs); err != nil {
		return nil, fmt.Errorf("parse roster %s: %w", r.path, err)
	}

	for i := range subs {
		if err := r.validate.StructCtx(ctx, &subs[i]); err != nil {
			return nil, fmt.Errorf("roster %s: subscriber %d: %w", r.path, i, describe(err))
		}
	}
	return subs, nil
}

func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	return fmt.Errorf("field %s failed %q (value %v)", fe.Field(), fe.Tag(), fe.Value())
}
