package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLeadField(t *testing.T) {
	tests := []struct {
		input   string
		want    LeadField
		wantErr bool
	}{
		{"name", LeadFieldName, false},
		{"phone", LeadFieldPhone, false},
		{" Email ", LeadFieldEmail, false},
		{"address", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLeadField(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownLeadField)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLeadSubmissionSetAndGet(t *testing.T) {
	var lead LeadSubmission

	require.NoError(t, lead.Set(LeadFieldName, "Иван"))
	require.NoError(t, lead.Set(LeadFieldPhone, "+79991234567"))
	require.NoError(t, lead.Set(LeadFieldEmail, "a@b.ru"))

	assert.Equal(t, "Иван", lead.Get(LeadFieldName))
	assert.Equal(t, "+79991234567", lead.Get(LeadFieldPhone))
	assert.Equal(t, "a@b.ru", lead.Get(LeadFieldEmail))
	assert.True(t, lead.Complete())

	require.NoError(t, lead.Set(LeadFieldPhone, ""))
	assert.False(t, lead.Complete())

	assert.ErrorIs(t, lead.Set(LeadField("fax"), "x"), ErrUnknownLeadField)
	assert.Equal(t, "", lead.Get(LeadField("fax")))
}

func TestLeadSubmissionIsEmpty(t *testing.T) {
	assert.True(t, LeadSubmission{}.IsEmpty())
	assert.False(t, LeadSubmission{Email: "a@b.ru"}.IsEmpty())
}

func TestLeadSubmissionJSONIsFlat(t *testing.T) {
	body, err := json.Marshal(LeadSubmission{Name: "Иван", Phone: "+79991234567", Email: "a@b.ru"})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Len(t, decoded, 3)
	assert.Equal(t, "Иван", decoded["name"])
	assert.Equal(t, "+79991234567", decoded["phone"])
	assert.Equal(t, "a@b.ru", decoded["email"])
}

func TestLeadResponseDecodesEndpointReply(t *testing.T) {
	raw := `{"success": true, "message": "Заявка успешно сохранена", "lead_id": 42, "email_sent": false}`

	var resp LeadResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))
	assert.True(t, bool(resp.Success))
	require.NotNil(t, resp.LeadID)
	assert.Equal(t, int64(42), *resp.LeadID)
	assert.False(t, resp.EmailSent)
}

func TestTruthyFollowsScriptSemantics(t *testing.T) {
	tests := map[string]bool{
		`true`:  true,
		`1`:     true,
		`-2.5`:  true,
		`"ok"`:  true,
		`"0"`:   true,
		`{}`:    true,
		`[]`:    true,
		`false`: false,
		`0`:     false,
		`""`:    false,
		`null`:  false,
	}

	for raw, want := range tests {
		var flag Truthy
		require.NoError(t, json.Unmarshal([]byte(raw), &flag), raw)
		assert.Equal(t, want, bool(flag), raw)
	}
}
