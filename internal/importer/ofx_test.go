package importer

import (
	"testing"

	"github.com/aclindsa/ofxgo"
	"github.com/stretchr/testify/assert"
)

func TestOFXCategoryHint(t *testing.T) {
	assert.Equal(t, "Interest", ofxCategoryHint("INT"))
	assert.Equal(t, "Bank Fees", ofxCategoryHint("FEE"))
	assert.Equal(t, "Cash", ofxCategoryHint("ATM"))
	assert.Equal(t, "", ofxCategoryHint("DEBIT"))
	assert.Equal(t, "", ofxCategoryHint(""))
}

func TestOFXDescription(t *testing.T) {
	tests := []struct {
		name string
		tx   ofxgo.Transaction
		want string
	}{
		{
			name: "payee wins",
			tx: ofxgo.Transaction{
				Payee: &ofxgo.Payee{Name: "Corner Grocery"},
				Name:  "POS 1234",
				Memo:  "card purchase",
			},
			want: "Corner Grocery",
		},
		{
			name: "name over memo",
			tx:   ofxgo.Transaction{Name: " STARBUCKS #552 ", Memo: "coffee"},
			want: "STARBUCKS #552",
		},
		{
			name: "memo fallback",
			tx:   ofxgo.Transaction{Memo: "transfer to savings"},
			want: "transfer to savings",
		},
		{
			name: "all empty",
			tx:   ofxgo.Transaction{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ofxDescription(tt.tx))
		})
	}
}
