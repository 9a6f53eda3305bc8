package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/api-sage/freelance-billing/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/freelance-billing/src/internal/domain"
	"github.com/shopspring/decimal"
)

// fakeLedger mimics the transactional store: WithinTx serializes units of
// work behind a mutex and restores a snapshot when the callback fails, so
// a rejected operation leaves no trace.
type fakeLedger struct {
	mu       sync.Mutex
	profiles map[int64]*ledgerProfile
	jobs     map[int64]*ledgerJob
}

type ledgerProfile struct {
	role    domain.ProfileRole
	balance decimal.Decimal
}

type ledgerJob struct {
	contractID     int64
	clientID       int64
	contractorID   int64
	contractStatus domain.ContractStatus
	price          decimal.Decimal
	paid           *bool
	paymentDate    *time.Time
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		profiles: make(map[int64]*ledgerProfile),
		jobs:     make(map[int64]*ledgerJob),
	}
}

func (l *fakeLedger) addProfile(id int64, role domain.ProfileRole, balance string) {
	l.profiles[id] = &ledgerProfile{role: role, balance: decimal.RequireFromString(balance)}
}

func (l *fakeLedger) addJob(id, contractID, clientID, contractorID int64, status domain.ContractStatus, price string, paid *bool) {
	l.jobs[id] = &ledgerJob{
		contractID:     contractID,
		clientID:       clientID,
		contractorID:   contractorID,
		contractStatus: status,
		price:          decimal.RequireFromString(price),
		paid:           paid,
	}
}

func (l *fakeLedger) balance(id int64) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.profiles[id].balance
}

func (l *fakeLedger) jobPaid(id int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return domain.NormalizePaidFlag(l.jobs[id].paid) == domain.JobPaid
}

func (l *fakeLedger) WithinTx(ctx context.Context, fn func(tx repo_interfaces.LedgerTx) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	snapshot := l.copyState()
	if err := fn(&fakeLedgerTx{ledger: l}); err != nil {
		l.profiles = snapshot.profiles
		l.jobs = snapshot.jobs
		return err
	}
	return nil
}

func (l *fakeLedger) copyState() *fakeLedger {
	cp := newFakeLedger()
	for id, p := range l.profiles {
		clone := *p
		cp.profiles[id] = &clone
	}
	for id, j := range l.jobs {
		clone := *j
		if j.paid != nil {
			paid := *j.paid
			clone.paid = &paid
		}
		if j.paymentDate != nil {
			date := *j.paymentDate
			clone.paymentDate = &date
		}
		cp.jobs[id] = &clone
	}
	return cp
}

type fakeLedgerTx struct {
	ledger *fakeLedger
}

func (t *fakeLedgerTx) ProfileForUpdate(ctx context.Context, profileID int64) (domain.Profile, error) {
	p, ok := t.ledger.profiles[profileID]
	if !ok {
		return domain.Profile{}, domain.ErrRecordNotFound
	}
	return domain.Profile{
		ID:      profileID,
		Role:    p.role,
		Balance: p.balance.StringFixed(2),
	}, nil
}

func (t *fakeLedgerTx) BalancesForUpdate(ctx context.Context, profileIDs ...int64) (map[int64]decimal.Decimal, error) {
	balances := make(map[int64]decimal.Decimal, len(profileIDs))
	for _, id := range profileIDs {
		p, ok := t.ledger.profiles[id]
		if !ok {
			return nil, domain.ErrRecordNotFound
		}
		balances[id] = p.balance
	}
	return balances, nil
}

func (t *fakeLedgerTx) UnpaidTotalForClient(ctx context.Context, clientID int64) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, job := range t.ledger.jobs {
		if job.clientID != clientID || job.contractStatus != domain.ContractStatusInProgress {
			continue
		}
		if domain.NormalizePaidFlag(job.paid) == domain.JobPaid {
			continue
		}
		total = total.Add(job.price)
	}
	return total, nil
}

func (t *fakeLedgerTx) JobForSettlement(ctx context.Context, jobID int64) (domain.JobClaim, error) {
	job, ok := t.ledger.jobs[jobID]
	if !ok {
		return domain.JobClaim{}, domain.ErrRecordNotFound
	}
	return domain.JobClaim{
		JobID:         jobID,
		ContractID:    job.contractID,
		Price:         job.price.StringFixed(2),
		PaymentStatus: domain.NormalizePaidFlag(job.paid),
		ClientID:      job.clientID,
		ContractorID:  job.contractorID,
	}, nil
}

func (t *fakeLedgerTx) CreditBalance(ctx context.Context, profileID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	p, ok := t.ledger.profiles[profileID]
	if !ok {
		return decimal.Zero, domain.ErrRecordNotFound
	}
	p.balance = p.balance.Add(amount)
	return p.balance, nil
}

func (t *fakeLedgerTx) DebitBalance(ctx context.Context, profileID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	p, ok := t.ledger.profiles[profileID]
	if !ok {
		return decimal.Zero, domain.ErrRecordNotFound
	}
	if p.balance.LessThan(amount) {
		return decimal.Zero, domain.ErrInsufficientBalance
	}
	p.balance = p.balance.Sub(amount)
	return p.balance, nil
}

func (t *fakeLedgerTx) MarkJobPaid(ctx context.Context, jobID int64) (time.Time, error) {
	job, ok := t.ledger.jobs[jobID]
	if !ok {
		return time.Time{}, domain.ErrRecordNotFound
	}
	if domain.NormalizePaidFlag(job.paid) == domain.JobPaid {
		return time.Time{}, domain.ErrJobAlreadyPaid
	}
	paid := true
	now := time.Now()
	job.paid = &paid
	job.paymentDate = &now
	return now, nil
}

func boolPtr(v bool) *bool {
	return &v
}

func clientProfile(id int64) domain.Profile {
	return domain.Profile{ID: id, Role: domain.ProfileRoleClient}
}

func contractorProfile(id int64) domain.Profile {
	return domain.Profile{ID: id, Role: domain.ProfileRoleContractor}
}
