package chatControllers

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient returns a canned result per model and records every attempt.
type stubClient struct {
	replies map[string]string
	errs    map[string]error
	calls   []string
	lastMsg []Message
}

func (s *stubClient) Complete(_ context.Context, model string, messages []Message, _ int, _ float64) (string, error) {
	s.calls = append(s.calls, model)
	s.lastMsg = messages
	if err, ok := s.errs[model]; ok {
		return "", err
	}
	return s.replies[model], nil
}

func testModels() []string {
	return []string{"model-a", "model-b", "model-c"}
}

func TestRespondFallsBackToThirdModel(t *testing.T) {
	logger, hook := logrustest.NewNullLogger()
	client := &stubClient{
		replies: map[string]string{"model-c": "OK"},
		errs: map[string]error{
			"model-a": errors.New("timeout"),
			"model-b": errors.New("rejected"),
		},
	}
	responder := NewResponder(client, testModels(), logger)

	reply := responder.Respond(context.Background(), "is paracetamol in stock?", nil)

	assert.Equal(t, "OK", reply)
	assert.Equal(t, []string{"model-a", "model-b", "model-c"}, client.calls)

	warnings := 0
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warnings++
		}
	}
	assert.Equal(t, 2, warnings)
}

func TestRespondAllModelsFail(t *testing.T) {
	logger, hook := logrustest.NewNullLogger()
	client := &stubClient{
		errs: map[string]error{
			"model-a": errors.New("boom"),
			"model-b": errors.New("boom"),
			"model-c": errors.New("boom"),
		},
	}
	responder := NewResponder(client, testModels(), logger)

	reply := responder.Respond(context.Background(), "hello", nil)

	assert.Equal(t, apology, reply)
	assert.Len(t, hook.AllEntries(), 3)
}

func TestRespondShortCircuitsOnFirstSuccess(t *testing.T) {
	logger, _ := logrustest.NewNullLogger()
	client := &stubClient{
		replies: map[string]string{"model-a": "  first answer  "},
	}
	responder := NewResponder(client, testModels(), logger)

	reply := responder.Respond(context.Background(), "hello", nil)

	assert.Equal(t, "first answer", reply)
	assert.Equal(t, []string{"model-a"}, client.calls)
}

func TestRespondTreatsEmptyCompletionAsFailure(t *testing.T) {
	logger, hook := logrustest.NewNullLogger()
	client := &stubClient{
		replies: map[string]string{"model-a": "   ", "model-b": "real answer"},
	}
	responder := NewResponder(client, testModels(), logger)

	reply := responder.Respond(context.Background(), "hello", nil)

	assert.Equal(t, "real answer", reply)
	assert.Len(t, hook.AllEntries(), 1)
}

func TestRespondBuildsMessageSequence(t *testing.T) {
	logger, _ := logrustest.NewNullLogger()
	client := &stubClient{replies: map[string]string{"model-a": "OK"}}
	responder := NewResponder(client, testModels(), logger)

	history := []Message{
		{Role: "user", Content: "earlier question"},
		{Role: "assistant", Content: "earlier answer"},
	}
	responder.Respond(context.Background(), "new question", history)

	require.Len(t, client.lastMsg, 4)
	assert.Equal(t, "system", client.lastMsg[0].Role)
	assert.Equal(t, "earlier question", client.lastMsg[1].Content)
	assert.Equal(t, "earlier answer", client.lastMsg[2].Content)
	assert.Equal(t, Message{Role: "user", Content: "new question"}, client.lastMsg[3])
}

func TestNewResponderDefaults(t *testing.T) {
	responder := NewResponder(&stubClient{}, nil, nil)
	assert.Equal(t, DefaultModels(), responder.models)
	assert.NotNil(t, responder.log)
}
