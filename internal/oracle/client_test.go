package oracle

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/brain-heist/config"
	"go.uber.org/zap"
)

func oracleServer(t *testing.T, reply string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, ":generateContent")

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Contents)

		if status != http.StatusOK {
			http.Error(w, "upstream error", status)
			return
		}

		resp := generateResponse{
			Candidates: []candidate{
				{Content: content{Parts: []part{{Text: reply}}}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func newTestClient(serverURL string) *Client {
	return NewClient(config.OracleConfig{
		BaseURL:        serverURL,
		APIKey:         "test-key",
		Model:          "test-model",
		TimeoutSeconds: 2,
	}, zap.NewNop())
}

func TestGenerateQuestion(t *testing.T) {
	server := oracleServer(t, "  What is the capital of Kyrgyzstan?\n", http.StatusOK)
	defer server.Close()

	client := newTestClient(server.URL)
	question, err := client.GenerateQuestion(context.Background(), "Geography")
	require.NoError(t, err)
	assert.Equal(t, "What is the capital of Kyrgyzstan?", question)
}

func TestGenerateQuestionServerError(t *testing.T) {
	server := oracleServer(t, "", http.StatusInternalServerError)
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.GenerateQuestion(context.Background(), "Maths")
	require.Error(t, err)

	var oracleErr *Error
	assert.ErrorAs(t, err, &oracleErr)
	assert.Equal(t, "generate question", oracleErr.Op)
}

func TestVerifyAnswerCorrect(t *testing.T) {
	server := oracleServer(t, "CORRECT", http.StatusOK)
	defer server.Close()

	client := newTestClient(server.URL)
	correct, err := client.VerifyAnswer(context.Background(), "2+2?", "4")
	require.NoError(t, err)
	assert.True(t, correct)
}

func TestVerifyAnswerLenientCasing(t *testing.T) {
	server := oracleServer(t, " correct \n", http.StatusOK)
	defer server.Close()

	client := newTestClient(server.URL)
	correct, err := client.VerifyAnswer(context.Background(), "2+2?", "four")
	require.NoError(t, err)
	assert.True(t, correct)
}

func TestVerifyAnswerIncorrect(t *testing.T) {
	server := oracleServer(t, "INCORRECT", http.StatusOK)
	defer server.Close()

	client := newTestClient(server.URL)
	correct, err := client.VerifyAnswer(context.Background(), "2+2?", "5")
	require.NoError(t, err)
	assert.False(t, correct)
}

func TestVerifyAnswerUnexpectedVerdict(t *testing.T) {
	server := oracleServer(t, "Well, that depends...", http.StatusOK)
	defer server.Close()

	// Anything but the CORRECT verdict counts as incorrect
	client := newTestClient(server.URL)
	correct, err := client.VerifyAnswer(context.Background(), "2+2?", "4")
	require.NoError(t, err)
	assert.False(t, correct)
}

func TestVerifyAnswerCanceledContext(t *testing.T) {
	server := oracleServer(t, "CORRECT", http.StatusOK)
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newTestClient(server.URL)
	_, err := client.VerifyAnswer(ctx, "2+2?", "4")
	assert.Error(t, err)
}
