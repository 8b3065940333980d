package domain_test

import (
	"testing"

	"github.com/shlokkku/Ageis-AI/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery_Validate(t *testing.T) {
	tests := []struct {
		name    string
		query   domain.Query
		wantErr error
	}{
		{"valid", domain.Query{Text: "what is my risk?", Identity: "user-1"}, nil},
		{"empty text", domain.Query{Identity: "user-1"}, domain.ErrEmptyQuery},
		{"missing identity", domain.Query{Text: "hello"}, domain.ErrMissingIdentity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestState_AttachResult_RejectsDuplicateKind(t *testing.T) {
	s := domain.NewState(domain.Query{Text: "q", Identity: "u"})

	err := s.AttachResult(domain.StageResult{Kind: domain.KindRisk, DataAvailable: true})
	require.NoError(t, err)

	err = s.AttachResult(domain.StageResult{Kind: domain.KindRisk})
	require.Error(t, err)
	assert.True(t, domain.IsProtocolViolation(err))
}

func TestState_MarkVisualizerRun_AtMostOnce(t *testing.T) {
	s := domain.NewState(domain.Query{Text: "q", Identity: "u"})

	require.NoError(t, s.MarkVisualizerRun())

	err := s.MarkVisualizerRun()
	require.Error(t, err)
	assert.True(t, domain.IsProtocolViolation(err))
}

func TestState_Trace(t *testing.T) {
	s := domain.NewState(domain.Query{Text: "q", Identity: "u"})

	s.RecordVisit("risk")
	s.RecordVisit("summarizer")

	assert.True(t, s.Visited("risk"))
	assert.True(t, s.Visited("summarizer"))
	assert.False(t, s.Visited("fraud"))
	assert.Equal(t, []string{"risk", "summarizer"}, s.Trace)
}

func TestState_PrimaryResult(t *testing.T) {
	s := domain.NewState(domain.Query{Text: "q", Identity: "u"})
	assert.Nil(t, s.PrimaryResult())

	require.NoError(t, s.AttachResult(domain.StageResult{Kind: domain.KindFraud, DataAvailable: true}))
	got := s.PrimaryResult()
	require.NotNil(t, got)
	assert.Equal(t, domain.KindFraud, got.Kind)
}
