package service

import (
	"github.com/hance08/duit/internal/store"
)

type Config struct {
	ReportLabel string
}

type Service struct {
	Ledger *LedgerService
	Report *ReportService
}

func NewService(repo store.Repository, cfg Config) *Service {
	return &Service{
		Ledger: NewLedgerService(repo, cfg),
		Report: NewReportService(repo, cfg),
	}
}
