package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const (
	reportIDLength  = 12
	receiptIDLength = 10
)

// GenerateReportID gera o identificador de uma execução do relatório
func GenerateReportID() (string, error) {
	return gonanoid.Generate(characters, reportIDLength)
}

// GenerateReceiptID gera o identificador de cheques importados sem receipt_id
func GenerateReceiptID() (string, error) {
	id, err := gonanoid.Generate(characters, receiptIDLength)
	if err != nil {
		return "", err
	}
	return "rcpt_" + id, nil
}
