// Package ident generates identifiers, secret keys and invoice numbers.
package ident

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	orderIDLength = 9
	shortIDLength = 6
	keyLength     = 12
	txnIDLength   = 6
)

// OrderID returns a new order identifier, e.g. "ord_k3j9x0a2b".
func OrderID() string {
	return "ord_" + token(orderIDLength)
}

// InvoiceID returns a new invoice identifier.
func InvoiceID() string {
	return "inv_" + token(orderIDLength)
}

// DraftInvoiceID returns identifier for an unsaved invoice draft.
func DraftInvoiceID(now time.Time) string {
	return fmt.Sprintf("inv_draft_%d", now.UnixMilli())
}

// LinkID returns a new download link identifier.
func LinkID() string {
	return "dl_" + token(shortIDLength)
}

// LogID returns a new access log identifier.
func LogID() string {
	return "log_" + token(shortIDLength)
}

// LinkKey returns a secret download key.
func LinkKey() string {
	return token(keyLength)
}

// TransactionID returns a simulated PayPal transaction reference.
func TransactionID() string {
	return "PAY-" + strings.ToUpper(token(txnIDLength))
}

// InvoiceNumber returns a number in TS-<year>-<1000..9999> form.
func InvoiceNumber(now time.Time) string {
	return fmt.Sprintf("TS-%d-%d", now.Year(), 1000+rand.IntN(9000))
}

// token returns n lowercase alphanumerics taken from random UUIDs.
func token(n int) string {
	var b strings.Builder
	for b.Len() < n {
		raw := strings.ReplaceAll(uuid.NewString(), "-", "")
		b.WriteString(raw[:min(len(raw), n-b.Len())])
	}
	return b.String()
}
