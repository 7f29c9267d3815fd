package repository

import (
	"context"
	"strconv"

	"proposalcraft/internal/domain/entities"
	"proposalcraft/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const proposalsOwnerIndex = "owner_id-created_at-index"

type proposalItem struct {
	ID             string   `dynamodbav:"id"`
	OwnerID        string   `dynamodbav:"owner_id"`
	ClientName     string   `dynamodbav:"client_name"`
	ClientEmail    string   `dynamodbav:"client_email"`
	ProjectType    string   `dynamodbav:"project_type"`
	PageCount      int      `dynamodbav:"page_count"`
	Features       []string `dynamodbav:"features"`
	BudgetTier     string   `dynamodbav:"budget_tier,omitempty"`
	Timeline       string   `dynamodbav:"timeline,omitempty"`
	Description    string   `dynamodbav:"description,omitempty"`
	Template       string   `dynamodbav:"template"`
	Status         string   `dynamodbav:"status"`
	PrimaryColor   string   `dynamodbav:"primary_color,omitempty"`
	SecondaryColor string   `dynamodbav:"secondary_color,omitempty"`
	ClientLogoURL  string   `dynamodbav:"client_logo_url,omitempty"`
	PDFURL         string   `dynamodbav:"pdf_url,omitempty"`
	CreatedAt      string   `dynamodbav:"created_at"`
	UpdatedAt      string   `dynamodbav:"updated_at"`
	SentAt         string   `dynamodbav:"sent_at,omitempty"`
	SignedAt       string   `dynamodbav:"signed_at,omitempty"`
	SignerName     string   `dynamodbav:"signer_name,omitempty"`
	RejectedAt     string   `dynamodbav:"rejected_at,omitempty"`
	ShareExpiresAt string   `dynamodbav:"share_expires_at,omitempty"`
	Version        int64    `dynamodbav:"version"`
}

// ProposalDynamoRepository persists Proposal entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_id-created_at-index (PK: owner_id, SK: created_at)
//
// Every write replaces the whole item guarded by the version it was read
// at, so two concurrent transitions of the same proposal cannot both land.
type ProposalDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb DynamoDBAPI, tableName string) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProposalDynamoRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	if p.Version == 0 {
		p.Version = 1
	}
	av, err := attributevalue.MarshalMap(toProposalItem(p))
	if err != nil {
		return entities.Proposal{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Proposal{}, conditionError(err)
	}
	return p, nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

// ListByOwner returns the owner's proposals, newest first.
func (r *ProposalDynamoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.Proposal, error) {
	paginator := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(proposalsOwnerIndex),
		KeyConditionExpression: aws.String("owner_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: ownerID},
		},
		ScanIndexForward: aws.Bool(false),
	})

	items := make([]entities.Proposal, 0)
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it proposalItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromProposalItem(it))
		}
	}
	return items, nil
}

func (r *ProposalDynamoRepository) Update(ctx context.Context, p entities.Proposal, expectedVersion int64, expectedStatus entities.ProposalStatus) (entities.Proposal, error) {
	p.Version = expectedVersion + 1
	av, err := attributevalue.MarshalMap(toProposalItem(p))
	if err != nil {
		return entities.Proposal{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected_version AND #status = :expected_status"),
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#version": "version", "#status": "status"},
			map[string]string{"#id": "id"},
		),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected_version": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
			":expected_status":  &types.AttributeValueMemberS{Value: string(expectedStatus)},
		},
	})
	if err != nil {
		return entities.Proposal{}, conditionError(err)
	}
	return p, nil
}

func toProposalItem(p entities.Proposal) proposalItem {
	it := proposalItem{
		ID:             p.ID,
		OwnerID:        p.OwnerID,
		ClientName:     p.ClientName,
		ClientEmail:    p.ClientEmail,
		ProjectType:    string(p.ProjectType),
		PageCount:      p.PageCount,
		Features:       p.Features,
		BudgetTier:     string(p.BudgetTier),
		Timeline:       string(p.Timeline),
		Description:    p.Description,
		Template:       string(p.Template),
		Status:         string(p.Status),
		ClientLogoURL:  p.ClientLogoURL,
		PDFURL:         p.PDFURL,
		CreatedAt:      formatTime(p.CreatedAt),
		UpdatedAt:      formatTime(p.UpdatedAt),
		SentAt:         formatTimePtr(p.SentAt),
		SignedAt:       formatTimePtr(p.SignedAt),
		SignerName:     p.SignerName,
		RejectedAt:     formatTimePtr(p.RejectedAt),
		ShareExpiresAt: formatTimePtr(p.ShareExpiresAt),
		Version:        p.Version,
	}
	if it.Features == nil {
		it.Features = []string{}
	}
	if p.CustomColors != nil {
		it.PrimaryColor = p.CustomColors.Primary
		it.SecondaryColor = p.CustomColors.Secondary
	}
	return it
}

func fromProposalItem(it proposalItem) entities.Proposal {
	p := entities.Proposal{
		ID:             it.ID,
		OwnerID:        it.OwnerID,
		ClientName:     it.ClientName,
		ClientEmail:    it.ClientEmail,
		ProjectType:    entities.ProjectType(it.ProjectType),
		PageCount:      it.PageCount,
		Features:       it.Features,
		BudgetTier:     entities.BudgetTier(it.BudgetTier),
		Timeline:       entities.Timeline(it.Timeline),
		Description:    it.Description,
		Template:       entities.TemplateID(it.Template),
		Status:         entities.ProposalStatus(it.Status),
		ClientLogoURL:  it.ClientLogoURL,
		PDFURL:         it.PDFURL,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
		SentAt:         parseTimePtr(it.SentAt),
		SignedAt:       parseTimePtr(it.SignedAt),
		SignerName:     it.SignerName,
		RejectedAt:     parseTimePtr(it.RejectedAt),
		ShareExpiresAt: parseTimePtr(it.ShareExpiresAt),
		Version:        it.Version,
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	if it.PrimaryColor != "" || it.SecondaryColor != "" {
		p.CustomColors = &entities.Colors{Primary: it.PrimaryColor, Secondary: it.SecondaryColor}
	}
	return p
}
