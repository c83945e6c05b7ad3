package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"dealdesk/internal/domain/entities"
	"dealdesk/internal/domain/finance"
	"dealdesk/internal/infrastructure/metrics"
	"dealdesk/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrDealNotFound      = errors.New("deal not found")
	ErrInvalidDealID     = errors.New("invalid deal id")
	ErrInvalidStatus     = errors.New("invalid deal status")
	ErrInvalidConviction = errors.New("invalid conviction lean")
	ErrInvalidConfidence = errors.New("conviction confidence must be between 0 and 100")
	ErrDuplicateDealID   = errors.New("duplicate deal id")
)

// DefaultExtractionReason is logged when a CIM import carries no reason.
const DefaultExtractionReason = "Updated from CIM"

// DetailsUpdate carries the descriptive fields of a deal. Nil leaves the
// field unchanged.
type DetailsUpdate struct {
	Name                 *string
	Industry             *string
	Location             *string
	Notes                *string
	Status               *entities.DealStatus
	ConvictionLean       *entities.ConvictionLean
	ConvictionConfidence *int
	OpenQuestions        []string
}

// BaselineUpdate replaces the headline financials of a deal.
// A nil AdjustedEbitda stores reported + addbacks + deductions; a nil
// BankEbitdaOverride clears the override.
type BaselineUpdate struct {
	Revenue            float64
	ReportedEbitda     float64
	AdjustedEbitda     *float64
	BankEbitdaOverride *float64
	Reason             string
}

// FinancingUpdate replaces the financing assumptions of a deal.
// Nil PurchaseMultiples keeps the current scenarios; a nil
// PurchasePriceOverride clears the override.
type FinancingUpdate struct {
	PurchaseMultiples     []float64
	PurchasePriceOverride *float64
	DownPaymentPercent    float64
	SellerNotePercent     float64
	InterestRate          float64
	AmortizationYears     float64
	OwnerCompAdjustment   float64
	RealEstateIncluded    bool
	RePrice               *float64
	ReTermYears           *float64
	ReRate                *float64
	Reason                string
}

// IDealUseCase exposes the deal workspace.
//
// Every mutation refreshes LastUpdated. Baseline, financing and extraction
// updates append change-log entries for the tracked fields they change.

type IDealUseCase interface {
	Create(ctx context.Context, name string) (entities.Deal, error)
	List(ctx context.Context) ([]entities.Deal, error)
	GetByID(ctx context.Context, id string) (entities.Deal, error)
	UpdateDetails(ctx context.Context, id string, upd DetailsUpdate) (entities.Deal, error)
	UpdateBaseline(ctx context.Context, id string, upd BaselineUpdate) (entities.Deal, error)
	ReplaceAdjustments(ctx context.Context, id string, addbacks, deductions []entities.AdjustmentLine) (entities.Deal, error)
	UpdateFinancing(ctx context.Context, id string, upd FinancingUpdate) (entities.Deal, error)
	ApplyExtraction(ctx context.Context, id string, res entities.ExtractionResult, reason string) (entities.Deal, error)
	Delete(ctx context.Context, id string) error
	Analyze(ctx context.Context, id string, scenario int) (finance.Analysis, error)
	DraftLOI(ctx context.Context, id string, scenario int) (finance.LOIDraft, error)
	Export(ctx context.Context) ([]entities.Deal, error)
	Import(ctx context.Context, deals []entities.Deal) (int, error)
}

type DealUseCase struct {
	repo                interfaces.IDealRepository
	log                 *zap.Logger
	deltaWarningPercent float64
	now                 func() time.Time
	newID               func() string
}

var _ IDealUseCase = (*DealUseCase)(nil)

func NewDealUseCase(repo interfaces.IDealRepository, log *zap.Logger, deltaWarningPercent float64) *DealUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &DealUseCase{
		repo:                repo,
		log:                 log,
		deltaWarningPercent: deltaWarningPercent,
		now:                 time.Now,
		newID:               func() string { return "deal-" + uuid.NewString() },
	}
}

func (u *DealUseCase) Create(ctx context.Context, name string) (entities.Deal, error) {
	d := entities.NewEmptyDeal(u.newID(), u.now())
	if name = strings.TrimSpace(name); name != "" {
		d.Name = name
	}

	created, err := u.repo.Put(ctx, d)
	if err != nil {
		return entities.Deal{}, err
	}
	metrics.DealMutations.WithLabelValues("create").Inc()
	u.log.Info("[deal][usecase] created", zap.String("deal_id", created.ID), zap.String("name", created.Name))
	return created, nil
}

// List returns every deal, most recently updated first.
func (u *DealUseCase) List(ctx context.Context) ([]entities.Deal, error) {
	deals, err := u.repo.LoadDeals(ctx)
	if err != nil {
		return nil, err
	}
	sortByLastUpdated(deals)
	return deals, nil
}

func (u *DealUseCase) GetByID(ctx context.Context, id string) (entities.Deal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Deal{}, ErrInvalidDealID
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Deal{}, err
	}
	if d.ID == "" {
		return entities.Deal{}, ErrDealNotFound
	}
	return d, nil
}

func (u *DealUseCase) UpdateDetails(ctx context.Context, id string, upd DetailsUpdate) (entities.Deal, error) {
	if upd.Status != nil && !upd.Status.Valid() {
		return entities.Deal{}, ErrInvalidStatus
	}
	if upd.ConvictionLean != nil && !upd.ConvictionLean.Valid() {
		return entities.Deal{}, ErrInvalidConviction
	}
	if c := upd.ConvictionConfidence; c != nil && (*c < 0 || *c > 100) {
		return entities.Deal{}, ErrInvalidConfidence
	}

	return u.mutate(ctx, id, "details", func(d *entities.Deal, _ time.Time) {
		if upd.Name != nil {
			d.Name = strings.TrimSpace(*upd.Name)
		}
		if upd.Industry != nil {
			d.Industry = strings.TrimSpace(*upd.Industry)
		}
		if upd.Location != nil {
			d.Location = strings.TrimSpace(*upd.Location)
		}
		if upd.Notes != nil {
			d.Notes = *upd.Notes
		}
		if upd.Status != nil {
			d.Status = *upd.Status
		}
		if upd.ConvictionLean != nil {
			d.ConvictionLean = *upd.ConvictionLean
		}
		if upd.ConvictionConfidence != nil {
			c := *upd.ConvictionConfidence
			d.ConvictionConfidence = &c
		}
		if upd.OpenQuestions != nil {
			d.OpenQuestions = append([]string{}, upd.OpenQuestions...)
		}
	})
}

func (u *DealUseCase) UpdateBaseline(ctx context.Context, id string, upd BaselineUpdate) (entities.Deal, error) {
	return u.mutate(ctx, id, "baseline", func(d *entities.Deal, now time.Time) {
		adjusted := finance.ComputeAdjustedEbitda(upd.ReportedEbitda, d.Addbacks, d.Deductions)
		if upd.AdjustedEbitda != nil {
			adjusted = *upd.AdjustedEbitda
		}

		cs := entities.NewChangeSet(now, strings.TrimSpace(upd.Reason))
		cs.Track(entities.FieldRevenue, d.Revenue, upd.Revenue)
		cs.Track(entities.FieldReportedEbitda, d.ReportedEbitda, upd.ReportedEbitda)
		cs.Track(entities.FieldAdjustedEbitda, d.AdjustedEbitda, adjusted)
		d.ChangeLog = cs.AppendTo(d.ChangeLog)

		d.Revenue = upd.Revenue
		d.ReportedEbitda = upd.ReportedEbitda
		d.AdjustedEbitda = adjusted
		d.BankEbitdaOverride = copyFloat(upd.BankEbitdaOverride)
	})
}

// ReplaceAdjustments swaps both lists wholesale. Amounts are stored as
// given; deductions are not re-negated.
func (u *DealUseCase) ReplaceAdjustments(ctx context.Context, id string, addbacks, deductions []entities.AdjustmentLine) (entities.Deal, error) {
	return u.mutate(ctx, id, "adjustments", func(d *entities.Deal, _ time.Time) {
		d.Addbacks = copyLines(addbacks)
		d.Deductions = copyLines(deductions)
	})
}

func (u *DealUseCase) UpdateFinancing(ctx context.Context, id string, upd FinancingUpdate) (entities.Deal, error) {
	return u.mutate(ctx, id, "financing", func(d *entities.Deal, now time.Time) {
		cs := entities.NewChangeSet(now, strings.TrimSpace(upd.Reason))
		cs.Track(entities.FieldDownPaymentPercent, d.DownPaymentPercent, upd.DownPaymentPercent)
		cs.Track(entities.FieldSellerNotePercent, d.SellerNotePercent, upd.SellerNotePercent)
		cs.Track(entities.FieldInterestRate, d.InterestRate, upd.InterestRate)
		cs.Track(entities.FieldAmortizationYears, d.AmortizationYears, upd.AmortizationYears)
		cs.Track(entities.FieldPurchasePriceOverride, valueOrZero(d.PurchasePriceOverride), valueOrZero(upd.PurchasePriceOverride))
		d.ChangeLog = cs.AppendTo(d.ChangeLog)

		if upd.PurchaseMultiples != nil {
			d.PurchaseMultiples = append([]float64{}, upd.PurchaseMultiples...)
		}
		d.PurchasePriceOverride = copyFloat(upd.PurchasePriceOverride)
		d.DownPaymentPercent = upd.DownPaymentPercent
		d.SellerNotePercent = upd.SellerNotePercent
		d.InterestRate = upd.InterestRate
		d.AmortizationYears = upd.AmortizationYears
		d.OwnerCompAdjustment = upd.OwnerCompAdjustment
		d.RealEstateIncluded = upd.RealEstateIncluded
		if upd.RealEstateIncluded {
			d.RePrice = copyFloat(upd.RePrice)
			d.ReTermYears = copyFloat(upd.ReTermYears)
			d.ReRate = copyFloat(upd.ReRate)
		} else {
			d.RePrice, d.ReTermYears, d.ReRate = nil, nil, nil
		}
	})
}

// ApplyExtraction merges a CIM extraction into the deal. Only fields the
// model reported are copied. Adjusted EBITDA is recomputed from the
// extracted figures when reported EBITDA and addbacks are both present,
// and falls back to reported EBITDA when only that is present.
func (u *DealUseCase) ApplyExtraction(ctx context.Context, id string, res entities.ExtractionResult, reason string) (entities.Deal, error) {
	if reason = strings.TrimSpace(reason); reason == "" {
		reason = DefaultExtractionReason
	}

	return u.mutate(ctx, id, "extraction", func(d *entities.Deal, now time.Time) {
		cs := entities.NewChangeSet(now, reason)
		if res.Revenue != nil {
			cs.Track(entities.FieldRevenue, d.Revenue, *res.Revenue)
			d.Revenue = *res.Revenue
		}
		if res.ReportedEbitda != nil {
			cs.Track(entities.FieldReportedEbitda, d.ReportedEbitda, *res.ReportedEbitda)
			d.ReportedEbitda = *res.ReportedEbitda
		}
		if len(res.Addbacks) > 0 {
			d.Addbacks = copyLines(res.Addbacks)
		}
		if len(res.Deductions) > 0 {
			d.Deductions = copyLines(res.Deductions)
		}
		if res.DealName != "" {
			d.Name = res.DealName
		}
		if res.Industry != "" {
			d.Industry = res.Industry
		}

		if res.ReportedEbitda != nil {
			adjusted := *res.ReportedEbitda
			if res.Addbacks != nil {
				adjusted = finance.ComputeAdjustedEbitda(*res.ReportedEbitda, res.Addbacks, res.Deductions)
			}
			cs.Track(entities.FieldAdjustedEbitda, d.AdjustedEbitda, adjusted)
			d.AdjustedEbitda = adjusted
		}
		d.ChangeLog = cs.AppendTo(d.ChangeLog)
	})
}

func (u *DealUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidDealID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDealNotFound
	}
	metrics.DealMutations.WithLabelValues("delete").Inc()
	u.log.Info("[deal][usecase] deleted", zap.String("deal_id", id))
	return nil
}

func (u *DealUseCase) Analyze(ctx context.Context, id string, scenario int) (finance.Analysis, error) {
	d, err := u.GetByID(ctx, id)
	if err != nil {
		return finance.Analysis{}, err
	}

	a := finance.Analyze(d, scenario, u.deltaWarningPercent)
	metrics.DealAnalyses.WithLabelValues(string(a.Financing.Financeability)).Inc()
	if a.DeltaWarning {
		u.log.Debug("[deal][usecase] adjusted ebitda far from reported",
			zap.String("deal_id", d.ID), zap.Float64("delta_percent", a.DeltaPercent))
	}
	return a, nil
}

func (u *DealUseCase) DraftLOI(ctx context.Context, id string, scenario int) (finance.LOIDraft, error) {
	d, err := u.GetByID(ctx, id)
	if err != nil {
		return finance.LOIDraft{}, err
	}
	return finance.DraftLOI(d, scenario), nil
}

// Export returns the whole workspace in list order.
func (u *DealUseCase) Export(ctx context.Context) ([]entities.Deal, error) {
	return u.List(ctx)
}

// Import replaces the whole workspace. Deals keep their ids and timestamps;
// missing lists are normalized to empty ones.
func (u *DealUseCase) Import(ctx context.Context, deals []entities.Deal) (int, error) {
	seen := make(map[string]struct{}, len(deals))
	out := make([]entities.Deal, 0, len(deals))
	for _, d := range deals {
		d.ID = strings.TrimSpace(d.ID)
		if d.ID == "" {
			return 0, ErrInvalidDealID
		}
		if _, dup := seen[d.ID]; dup {
			return 0, ErrDuplicateDealID
		}
		seen[d.ID] = struct{}{}
		if d.Status != "" && !d.Status.Valid() {
			return 0, ErrInvalidStatus
		}
		if d.ConvictionLean != "" && !d.ConvictionLean.Valid() {
			return 0, ErrInvalidConviction
		}
		out = append(out, normalize(d, u.now()))
	}

	if err := u.repo.SaveDeals(ctx, out); err != nil {
		return 0, err
	}
	metrics.DealMutations.WithLabelValues("import").Inc()
	u.log.Info("[deal][usecase] workspace imported", zap.Int("deals", len(out)))
	return len(out), nil
}

// mutate loads a deal, applies fn, stamps LastUpdated and persists it.
func (u *DealUseCase) mutate(ctx context.Context, id, op string, fn func(d *entities.Deal, now time.Time)) (entities.Deal, error) {
	d, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Deal{}, err
	}

	now := u.now().UTC()
	before := len(d.ChangeLog)
	fn(&d, now)
	d.LastUpdated = now

	saved, err := u.repo.Put(ctx, d)
	if err != nil {
		return entities.Deal{}, err
	}
	metrics.DealMutations.WithLabelValues(op).Inc()
	u.log.Info("[deal][usecase] updated",
		zap.String("deal_id", saved.ID),
		zap.String("op", op),
		zap.Int("change_log_entries", len(saved.ChangeLog)-before))
	return saved, nil
}

func normalize(d entities.Deal, now time.Time) entities.Deal {
	if d.Status == "" {
		d.Status = entities.DealStatusInvestigating
	}
	if d.ConvictionLean == "" {
		d.ConvictionLean = entities.ConvictionNeedsWork
	}
	if d.LastUpdated.IsZero() {
		d.LastUpdated = now.UTC()
	}
	if d.Addbacks == nil {
		d.Addbacks = []entities.AdjustmentLine{}
	}
	if d.Deductions == nil {
		d.Deductions = []entities.AdjustmentLine{}
	}
	if len(d.PurchaseMultiples) == 0 {
		d.PurchaseMultiples = entities.DefaultPurchaseMultiples()
	}
	if d.ChangeLog == nil {
		d.ChangeLog = []entities.ChangeLogEntry{}
	}
	if d.OpenQuestions == nil {
		d.OpenQuestions = []string{}
	}
	return d
}

func sortByLastUpdated(deals []entities.Deal) {
	sort.SliceStable(deals, func(i, j int) bool {
		return deals[i].LastUpdated.After(deals[j].LastUpdated)
	})
}

func copyLines(in []entities.AdjustmentLine) []entities.AdjustmentLine {
	return append([]entities.AdjustmentLine{}, in...)
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
