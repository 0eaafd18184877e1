package payroll

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/chainpay/chainpay-api/internal/db"
	"github.com/chainpay/chainpay-api/internal/helpers"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Batch builder errors surfaced to users.
var (
	ErrBatchNotFound   = errors.New("batch not found")
	ErrMissingFields   = errors.New("please fill in all fields")
	ErrInvalidAmount   = errors.New("please enter a valid USDC amount (greater than zero)")
	ErrIndexOutOfRange = errors.New("beneficiary index out of range")
	ErrAllAlreadyAdded = errors.New("all employees are already added to the batch")
	ErrNoEmployees     = errors.New("no employees found to add")
	ErrEmptyBatch      = errors.New("please add at least one beneficiary")
)

// Batch is an ordered, mutable list of beneficiaries staged for one batch
// transfer. Access is serialized by the owning Store's lock; a batch is
// owned by one client session at a time.
type Batch struct {
	ID            uuid.UUID     `json:"id"`
	Beneficiaries []Beneficiary `json:"beneficiaries"`
}

// Total sums the staged amounts. Beneficiary amounts are validated decimals
// by the time they reach the list, so unparseable entries count as zero.
func (b *Batch) Total() decimal.Decimal {
	total := decimal.Zero
	for _, bn := range b.Beneficiaries {
		if d, err := decimal.NewFromString(bn.USDCAmount); err == nil {
			total = total.Add(d)
		}
	}
	return total
}

// AddResult reports the outcome of a bulk employee add.
type AddResult struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

// Store keeps staged batches in memory, keyed by batch ID. State is
// process-local and unreplicated; a batch abandoned by its client simply
// ages in place until the process restarts.
type Store struct {
	mu      sync.Mutex
	batches map[uuid.UUID]*Batch
}

// NewStore creates an empty batch store.
func NewStore() *Store {
	return &Store{batches: make(map[uuid.UUID]*Batch)}
}

// Create stages a new empty batch and returns it.
func (s *Store) Create() *Batch {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := &Batch{ID: uuid.New(), Beneficiaries: []Beneficiary{}}
	s.batches[b.ID] = b
	return b
}

// Get returns a snapshot copy of the batch with the given ID.
func (s *Store) Get(id uuid.UUID) (Batch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.batches[id]
	if !ok {
		return Batch{}, ErrBatchNotFound
	}
	return snapshot(b), nil
}

// AddOne validates and appends a single beneficiary. All four fields must
// be present and the amount must be a positive number. Duplicate addresses
// are allowed on this path; only the bulk employee add deduplicates.
func (s *Store) AddOne(id uuid.UUID, beneficiary Beneficiary) (Batch, error) {
	if beneficiary.Nickname == "" || beneficiary.BeneficiaryAddress == "" ||
		beneficiary.DestinationChainSelector == "" || beneficiary.USDCAmount == "" {
		return Batch{}, ErrMissingFields
	}
	if !helpers.IsAmountValid(beneficiary.USDCAmount) {
		return Batch{}, ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.batches[id]
	if !ok {
		return Batch{}, ErrBatchNotFound
	}
	b.Beneficiaries = append(b.Beneficiaries, beneficiary)
	return snapshot(b), nil
}

// AddEmployees maps every employee to a beneficiary (stored wallet,
// preferred chain, monthly salary) and appends the ones whose wallet
// address is not already staged. Address comparison is case-insensitive.
// Returns ErrAllAlreadyAdded without mutating when nothing new remains.
func (s *Store) AddEmployees(id uuid.UUID, employees []db.Employee) (Batch, AddResult, error) {
	if len(employees) == 0 {
		return Batch{}, AddResult{}, ErrNoEmployees
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.batches[id]
	if !ok {
		return Batch{}, AddResult{}, ErrBatchNotFound
	}

	existing := make(map[string]bool, len(b.Beneficiaries))
	for _, bn := range b.Beneficiaries {
		existing[strings.ToLower(bn.BeneficiaryAddress)] = true
	}

	var fresh []Beneficiary
	for _, e := range employees {
		if existing[strings.ToLower(e.WalletAddress)] {
			continue
		}
		fresh = append(fresh, Beneficiary{
			Nickname:                 e.Name,
			BeneficiaryAddress:       e.WalletAddress,
			DestinationChainSelector: e.PreferredChain,
			USDCAmount:               formatSalary(e.MonthlySalary),
		})
	}

	if len(fresh) == 0 {
		return snapshot(b), AddResult{Skipped: len(employees)}, ErrAllAlreadyAdded
	}

	b.Beneficiaries = append(b.Beneficiaries, fresh...)
	result := AddResult{Added: len(fresh), Skipped: len(employees) - len(fresh)}
	return snapshot(b), result, nil
}

// AddParsed appends CSV-parsed beneficiaries wholesale. The parser has
// already validated them; no deduplication is applied.
func (s *Store) AddParsed(id uuid.UUID, beneficiaries []Beneficiary) (Batch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.batches[id]
	if !ok {
		return Batch{}, ErrBatchNotFound
	}
	b.Beneficiaries = append(b.Beneficiaries, beneficiaries...)
	return snapshot(b), nil
}

// Remove deletes the beneficiary at the given position, compacting the list.
func (s *Store) Remove(id uuid.UUID, index int) (Batch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.batches[id]
	if !ok {
		return Batch{}, ErrBatchNotFound
	}
	if index < 0 || index >= len(b.Beneficiaries) {
		return Batch{}, ErrIndexOutOfRange
	}
	b.Beneficiaries = append(b.Beneficiaries[:index], b.Beneficiaries[index+1:]...)
	return snapshot(b), nil
}

// Consume atomically takes the staged beneficiaries out of the batch for
// execution, leaving it empty. Returns ErrEmptyBatch when nothing is staged.
func (s *Store) Consume(id uuid.UUID) ([]Beneficiary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.batches[id]
	if !ok {
		return nil, ErrBatchNotFound
	}
	if len(b.Beneficiaries) == 0 {
		return nil, ErrEmptyBatch
	}
	taken := b.Beneficiaries
	b.Beneficiaries = []Beneficiary{}
	return taken, nil
}

// Restore puts beneficiaries back onto a batch after a failed submission so
// the user can retry without re-staging.
func (s *Store) Restore(id uuid.UUID, beneficiaries []Beneficiary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.batches[id]
	if !ok {
		return
	}
	b.Beneficiaries = append(beneficiaries, b.Beneficiaries...)
}

func snapshot(b *Batch) Batch {
	out := Batch{ID: b.ID, Beneficiaries: make([]Beneficiary, len(b.Beneficiaries))}
	copy(out.Beneficiaries, b.Beneficiaries)
	return out
}

func formatSalary(salary float64) string {
	return decimal.NewFromFloat(salary).String()
}

// Describe renders the bulk-add outcome as a user-facing message.
func (r AddResult) Describe() string {
	if r.Skipped == 0 {
		return fmt.Sprintf("Added %d employees", r.Added)
	}
	return fmt.Sprintf("Added %d employees. %d were already in the batch.", r.Added, r.Skipped)
}
