package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateBatchNumber generates a unique batch number for products
// received without one
func GenerateBatchNumber() string {
	return "BATCH-" + strings.ToUpper(uuid.New().String()[:8])
}
