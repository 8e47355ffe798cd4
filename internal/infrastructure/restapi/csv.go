package restapi

import (
	"encoding/csv"
	"io"
	"strconv"

	"wallet_tracker/internal/domain/entity"
)

const (
	csvContentType = "text/csv; charset=utf-8"
	csvFileName    = "filtered_transactions.csv"
	csvTimeLayout  = "2006-01-02 15:04:05"
)

var csvHeader = []string{"hash", "from", "to", "value", "gasUsed", "timeStamp"}

// writeTransactionsCSV writes the header and one row per transaction, in the given order.
func writeTransactionsCSV(w io.Writer, txs []entity.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, tx := range txs {
		row := []string{
			tx.Hash,
			tx.From,
			tx.To,
			tx.Value.String(),
			strconv.FormatInt(tx.GasUsed, 10),
			tx.Timestamp.UTC().Format(csvTimeLayout),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
