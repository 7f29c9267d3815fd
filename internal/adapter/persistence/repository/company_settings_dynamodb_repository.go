package repository

import (
	"context"

	"proposalcraft/internal/domain/entities"
	"proposalcraft/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type companySettingsItem struct {
	OwnerID        string `dynamodbav:"owner_id"`
	CompanyName    string `dynamodbav:"company_name,omitempty"`
	LogoURL        string `dynamodbav:"logo_url,omitempty"`
	PrimaryColor   string `dynamodbav:"primary_color,omitempty"`
	SecondaryColor string `dynamodbav:"secondary_color,omitempty"`
	Address        string `dynamodbav:"address,omitempty"`
	Phone          string `dynamodbav:"phone,omitempty"`
	Email          string `dynamodbav:"email,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// CompanySettingsDynamoRepository persists CompanySettings in DynamoDB.
//
// Table requirements:
//   - PK: owner_id (string)
type CompanySettingsDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ICompanySettingsRepository = (*CompanySettingsDynamoRepository)(nil)

func NewCompanySettingsDynamoRepository(ddb DynamoDBAPI, tableName string) *CompanySettingsDynamoRepository {
	return &CompanySettingsDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CompanySettingsDynamoRepository) GetByOwnerID(ctx context.Context, ownerID string) (entities.CompanySettings, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"owner_id": &types.AttributeValueMemberS{Value: ownerID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CompanySettings{}, err
	}
	if len(out.Item) == 0 {
		return entities.CompanySettings{}, nil
	}

	var it companySettingsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CompanySettings{}, err
	}
	return fromCompanySettingsItem(it), nil
}

// Upsert overwrites the owner's record.
func (r *CompanySettingsDynamoRepository) Upsert(ctx context.Context, s entities.CompanySettings) (entities.CompanySettings, error) {
	av, err := attributevalue.MarshalMap(toCompanySettingsItem(s))
	if err != nil {
		return entities.CompanySettings{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.CompanySettings{}, err
	}
	return s, nil
}

func toCompanySettingsItem(s entities.CompanySettings) companySettingsItem {
	return companySettingsItem{
		OwnerID:        s.OwnerID,
		CompanyName:    s.CompanyName,
		LogoURL:        s.LogoURL,
		PrimaryColor:   s.PrimaryColor,
		SecondaryColor: s.SecondaryColor,
		Address:        s.Address,
		Phone:          s.Phone,
		Email:          s.Email,
		CreatedAt:      formatTime(s.CreatedAt),
		UpdatedAt:      formatTime(s.UpdatedAt),
	}
}

func fromCompanySettingsItem(it companySettingsItem) entities.CompanySettings {
	return entities.CompanySettings{
		OwnerID:        it.OwnerID,
		CompanyName:    it.CompanyName,
		LogoURL:        it.LogoURL,
		PrimaryColor:   it.PrimaryColor,
		SecondaryColor: it.SecondaryColor,
		Address:        it.Address,
		Phone:          it.Phone,
		Email:          it.Email,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
