package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
	"github.com/SscSPs/bill_tracker_app/internal/dto"
	"github.com/google/uuid"
)

// ReadBills decodes a JSON array of bills in the API's request shape. Bills
// without an id get a generated one. Every bill is validated.
func ReadBills(r io.Reader) ([]domain.Bill, error) {
	var reqs []dto.CreateBillRequest
	if err := json.NewDecoder(r).Decode(&reqs); err != nil {
		return nil, fmt.Errorf("failed to decode bills: %w", err)
	}

	bills := make([]domain.Bill, 0, len(reqs))
	for i, req := range reqs {
		bill, err := req.ToBill()
		if err != nil {
			return nil, fmt.Errorf("bill %d: %w", i, err)
		}
		if bill.ID == "" {
			bill.ID = uuid.NewString()
		}
		if err := bill.Validate(); err != nil {
			return nil, fmt.Errorf("bill %d (%s): %w", i, bill.Name, err)
		}
		bills = append(bills, bill)
	}
	return bills, nil
}

// ReadBillsFile reads bills from the JSON file at path.
func ReadBillsFile(path string) ([]domain.Bill, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bills file: %w", err)
	}
	defer f.Close()

	return ReadBills(f)
}
