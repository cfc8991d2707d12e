package importer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jihopark/moneydash/internal/asset"
	"github.com/jihopark/moneydash/internal/importer"
)

func TestService_Parse(t *testing.T) {
	input := strings.Join([]string{
		"name,amount,category,platform,description",
		"비상금,5000000,SAVINGS,카카오뱅크,emergency fund",
		"주식계좌,\"3,200,000\",STOCK,키움증권",
		"전세대출,-80000000,DEBT,국민은행",
		"금,250000,other",
		"",
	}, "\n")

	svc := importer.NewService()
	got, err := svc.Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, asset.CreateParams{
		Name:        "비상금",
		Amount:      5_000_000,
		Category:    asset.CategorySavings,
		Platform:    "카카오뱅크",
		Description: "emergency fund",
	}, got[0])

	assert.Equal(t, int64(3_200_000), got[1].Amount)
	assert.Equal(t, int64(-80_000_000), got[2].Amount)
	assert.Equal(t, asset.CategoryDebt, got[2].Category)

	// Category is case-insensitive; missing platform stays blank here and is
	// defaulted by the asset service.
	assert.Equal(t, asset.CategoryOther, got[3].Category)
	assert.Empty(t, got[3].Platform)
}

func TestService_Parse_NoHeader(t *testing.T) {
	input := "비상금,5000000,SAVINGS\n"

	svc := importer.NewService()
	got, err := svc.Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "비상금", got[0].Name)
}

func TestService_Parse_Errors(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		wantErr string
	}

	tests := []testCase{
		{
			name:    "BadAmount",
			input:   "name,amount,category\nfund,abc,SAVINGS\n",
			wantErr: "invalid amount",
		},
		{
			name:    "UnknownCategory",
			input:   "fund,1000,VEHICLE\n",
			wantErr: "unknown asset category",
		},
		{
			name:    "TooFewColumns",
			input:   "fund,1000\n",
			wantErr: "expected at least",
		},
		{
			name:    "MissingName",
			input:   " ,1000,SAVINGS\n",
			wantErr: "name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := importer.NewService()
			_, err := svc.Parse(strings.NewReader(tt.input))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestService_Parse_Empty(t *testing.T) {
	svc := importer.NewService()
	got, err := svc.Parse(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, got)
}
