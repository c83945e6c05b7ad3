package repository

import (
	"context"
	"fmt"
	"time"

	"dealdesk/internal/domain/entities"
	"dealdesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultDealsTableName = "deals"

	batchWriteLimit      = 25
	maxBatchWriteRetries = 5
)

// DynamoAPI is the subset of *dynamodb.Client the repository uses.
type DynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	BatchWriteItem(ctx context.Context, in *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

type adjustmentItem struct {
	Description string  `dynamodbav:"description"`
	Amount      float64 `dynamodbav:"amount"`
}

type changeLogItem struct {
	Timestamp string  `dynamodbav:"timestamp"`
	Field     string  `dynamodbav:"field"`
	OldValue  float64 `dynamodbav:"old_value"`
	NewValue  float64 `dynamodbav:"new_value"`
	Reason    string  `dynamodbav:"reason,omitempty"`
}

type dealItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Industry    string `dynamodbav:"industry"`
	Location    string `dynamodbav:"location"`
	Notes       string `dynamodbav:"notes"`
	Status      string `dynamodbav:"status"`
	LastUpdated string `dynamodbav:"last_updated"`

	Revenue            float64          `dynamodbav:"revenue"`
	ReportedEbitda     float64          `dynamodbav:"reported_ebitda"`
	AdjustedEbitda     float64          `dynamodbav:"adjusted_ebitda"`
	BankEbitdaOverride *float64         `dynamodbav:"bank_ebitda_override,omitempty"`
	Addbacks           []adjustmentItem `dynamodbav:"addbacks"`
	Deductions         []adjustmentItem `dynamodbav:"deductions"`

	PurchaseMultiples     []float64 `dynamodbav:"purchase_multiples"`
	PurchasePriceOverride *float64  `dynamodbav:"purchase_price_override,omitempty"`
	DownPaymentPercent    float64   `dynamodbav:"down_payment_percent"`
	SellerNotePercent     float64   `dynamodbav:"seller_note_percent"`
	InterestRate          float64   `dynamodbav:"interest_rate"`
	AmortizationYears     float64   `dynamodbav:"amortization_years"`
	RealEstateIncluded    bool      `dynamodbav:"real_estate_included"`
	RePrice               *float64  `dynamodbav:"re_price,omitempty"`
	ReTermYears           *float64  `dynamodbav:"re_term_years,omitempty"`
	ReRate                *float64  `dynamodbav:"re_rate,omitempty"`
	OwnerCompAdjustment   float64   `dynamodbav:"owner_comp_adjustment"`

	ChangeLog            []changeLogItem `dynamodbav:"change_log"`
	OpenQuestions        []string        `dynamodbav:"open_questions"`
	ConvictionLean       string          `dynamodbav:"conviction_lean"`
	ConvictionConfidence *int            `dynamodbav:"conviction_confidence,omitempty"`
}

// DealDynamoRepository persists deals in DynamoDB, one item per deal.
//
// Table requirements:
//   - PK: id (string)
//
// Workspace import replaces the table contents: items missing from the
// imported set are deleted, the rest are written in batches.

type DealDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IDealRepository = (*DealDynamoRepository)(nil)

func NewDealDynamoRepository(ddb DynamoAPI, tableName string) *DealDynamoRepository {
	if tableName == "" {
		tableName = DefaultDealsTableName
	}
	return &DealDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *DealDynamoRepository) LoadDeals(ctx context.Context) ([]entities.Deal, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})

	deals := []entities.Deal{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []dealItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			deals = append(deals, fromDealItem(it))
		}
	}
	return deals, nil
}

func (r *DealDynamoRepository) SaveDeals(ctx context.Context, deals []entities.Deal) error {
	existing, err := r.scanIDs(ctx)
	if err != nil {
		return err
	}

	keep := make(map[string]struct{}, len(deals))
	writes := make([]types.WriteRequest, 0, len(deals)+len(existing))
	for _, d := range deals {
		keep[d.ID] = struct{}{}
		av, err := attributevalue.MarshalMap(toDealItem(d))
		if err != nil {
			return err
		}
		writes = append(writes, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
	}
	for _, id := range existing {
		if _, ok := keep[id]; ok {
			continue
		}
		writes = append(writes, types.WriteRequest{DeleteRequest: &types.DeleteRequest{Key: idKey(id)}})
	}

	for _, batch := range chunk(writes, batchWriteLimit) {
		if err := r.batchWrite(ctx, batch); err != nil {
			return err
		}
	}
	return nil
}

func (r *DealDynamoRepository) GetByID(ctx context.Context, id string) (entities.Deal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Deal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Deal{}, nil
	}

	var it dealItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Deal{}, err
	}
	return fromDealItem(it), nil
}

func (r *DealDynamoRepository) Put(ctx context.Context, d entities.Deal) (entities.Deal, error) {
	av, err := attributevalue.MarshalMap(toDealItem(d))
	if err != nil {
		return entities.Deal{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Deal{}, err
	}
	return d, nil
}

func (r *DealDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          idKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *DealDynamoRepository) scanIDs(ctx context.Context) ([]string, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		ProjectionExpression:     aws.String("#id"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
		ConsistentRead:           aws.Bool(true),
	})

	var ids []string
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			if v, ok := item["id"].(*types.AttributeValueMemberS); ok {
				ids = append(ids, v.Value)
			}
		}
	}
	return ids, nil
}

// batchWrite resubmits unprocessed items a bounded number of times.
func (r *DealDynamoRepository) batchWrite(ctx context.Context, batch []types.WriteRequest) error {
	pending := batch
	for attempt := 0; len(pending) > 0; attempt++ {
		if attempt > maxBatchWriteRetries {
			return fmt.Errorf("dynamodb: %d writes left unprocessed", len(pending))
		}
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * 50 * time.Millisecond):
			}
		}

		out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{r.tableName: pending},
		})
		if err != nil {
			return err
		}
		pending = out.UnprocessedItems[r.tableName]
	}
	return nil
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func toDealItem(d entities.Deal) dealItem {
	it := dealItem{
		ID:                    d.ID,
		Name:                  d.Name,
		Industry:              d.Industry,
		Location:              d.Location,
		Notes:                 d.Notes,
		Status:                string(d.Status),
		LastUpdated:           formatTime(d.LastUpdated),
		Revenue:               d.Revenue,
		ReportedEbitda:        d.ReportedEbitda,
		AdjustedEbitda:        d.AdjustedEbitda,
		BankEbitdaOverride:    d.BankEbitdaOverride,
		Addbacks:              toAdjustmentItems(d.Addbacks),
		Deductions:            toAdjustmentItems(d.Deductions),
		PurchaseMultiples:     nonNilFloats(d.PurchaseMultiples),
		PurchasePriceOverride: d.PurchasePriceOverride,
		DownPaymentPercent:    d.DownPaymentPercent,
		SellerNotePercent:     d.SellerNotePercent,
		InterestRate:          d.InterestRate,
		AmortizationYears:     d.AmortizationYears,
		RealEstateIncluded:    d.RealEstateIncluded,
		RePrice:               d.RePrice,
		ReTermYears:           d.ReTermYears,
		ReRate:                d.ReRate,
		OwnerCompAdjustment:   d.OwnerCompAdjustment,
		OpenQuestions:         nonNilStrings(d.OpenQuestions),
		ConvictionLean:        string(d.ConvictionLean),
		ConvictionConfidence:  d.ConvictionConfidence,
	}
	it.ChangeLog = make([]changeLogItem, 0, len(d.ChangeLog))
	for _, e := range d.ChangeLog {
		it.ChangeLog = append(it.ChangeLog, changeLogItem{
			Timestamp: formatTime(e.Timestamp),
			Field:     e.Field,
			OldValue:  e.OldValue,
			NewValue:  e.NewValue,
			Reason:    e.Reason,
		})
	}
	return it
}

func fromDealItem(it dealItem) entities.Deal {
	d := entities.Deal{
		ID:                    it.ID,
		Name:                  it.Name,
		Industry:              it.Industry,
		Location:              it.Location,
		Notes:                 it.Notes,
		Status:                entities.DealStatus(it.Status),
		LastUpdated:           parseTime(it.LastUpdated),
		Revenue:               it.Revenue,
		ReportedEbitda:        it.ReportedEbitda,
		AdjustedEbitda:        it.AdjustedEbitda,
		BankEbitdaOverride:    it.BankEbitdaOverride,
		Addbacks:              fromAdjustmentItems(it.Addbacks),
		Deductions:            fromAdjustmentItems(it.Deductions),
		PurchaseMultiples:     nonNilFloats(it.PurchaseMultiples),
		PurchasePriceOverride: it.PurchasePriceOverride,
		DownPaymentPercent:    it.DownPaymentPercent,
		SellerNotePercent:     it.SellerNotePercent,
		InterestRate:          it.InterestRate,
		AmortizationYears:     it.AmortizationYears,
		RealEstateIncluded:    it.RealEstateIncluded,
		RePrice:               it.RePrice,
		ReTermYears:           it.ReTermYears,
		ReRate:                it.ReRate,
		OwnerCompAdjustment:   it.OwnerCompAdjustment,
		OpenQuestions:         nonNilStrings(it.OpenQuestions),
		ConvictionLean:        entities.ConvictionLean(it.ConvictionLean),
		ConvictionConfidence:  it.ConvictionConfidence,
	}
	d.ChangeLog = make([]entities.ChangeLogEntry, 0, len(it.ChangeLog))
	for _, e := range it.ChangeLog {
		d.ChangeLog = append(d.ChangeLog, entities.ChangeLogEntry{
			Timestamp: parseTime(e.Timestamp),
			Field:     e.Field,
			OldValue:  e.OldValue,
			NewValue:  e.NewValue,
			Reason:    e.Reason,
		})
	}
	return d
}

func toAdjustmentItems(lines []entities.AdjustmentLine) []adjustmentItem {
	out := make([]adjustmentItem, 0, len(lines))
	for _, l := range lines {
		out = append(out, adjustmentItem{Description: l.Description, Amount: l.Amount})
	}
	return out
}

func fromAdjustmentItems(items []adjustmentItem) []entities.AdjustmentLine {
	out := make([]entities.AdjustmentLine, 0, len(items))
	for _, it := range items {
		out = append(out, entities.AdjustmentLine{Description: it.Description, Amount: it.Amount})
	}
	return out
}
