package bankfeed

import (
	"fmt"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/genbahq/cashsignal/internal/models"
)

// Entry is one statement line mapped to the transaction model
type Entry struct {
	Date        time.Time
	Amount      decimal.Decimal
	Type        string
	Description string
}

// ParseStatement parses a bank statement XML export into entries.
// Expected shape:
//
//	<statement>
//	  <entry>
//	    <date>2026-08-01</date>
//	    <amount>150000</amount>
//	    <type>credit</type>
//	    <description>progress payment</description>
//	  </entry>
//	</statement>
//
// Credit entries become INCOME transactions, debit entries EXPENSE.
func ParseStatement(data []byte) ([]Entry, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}

	elements := doc.FindElements("//statement/entry")
	if len(elements) == 0 {
		return nil, fmt.Errorf("no entries found in statement")
	}

	entries := make([]Entry, 0, len(elements))
	for i, el := range elements {
		entry, err := parseEntry(el)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func parseEntry(el *etree.Element) (Entry, error) {
	dateEl := el.FindElement("./date")
	if dateEl == nil {
		return Entry{}, fmt.Errorf("date element not found")
	}
	date, err := time.ParseInLocation("2006-01-02", dateEl.Text(), time.UTC)
	if err != nil {
		return Entry{}, fmt.Errorf("invalid date: %w", err)
	}

	amountEl := el.FindElement("./amount")
	if amountEl == nil {
		return Entry{}, fmt.Errorf("amount element not found")
	}
	amount, err := decimal.NewFromString(amountEl.Text())
	if err != nil {
		return Entry{}, fmt.Errorf("invalid amount: %w", err)
	}
	if amount.IsNegative() {
		return Entry{}, fmt.Errorf("amount must not be negative")
	}

	typeEl := el.FindElement("./type")
	if typeEl == nil {
		return Entry{}, fmt.Errorf("type element not found")
	}
	var txType string
	switch typeEl.Text() {
	case "credit":
		txType = models.TransactionIncome
	case "debit":
		txType = models.TransactionExpense
	default:
		return Entry{}, fmt.Errorf("unknown entry type %q", typeEl.Text())
	}

	description := ""
	if descEl := el.FindElement("./description"); descEl != nil {
		description = descEl.Text()
	}

	return Entry{
		Date:        date,
		Amount:      amount,
		Type:        txType,
		Description: description,
	}, nil
}
