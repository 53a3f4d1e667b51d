//go:build integration
// +build integration

package app

import (
	"testing"

	"textbook_rsa_service/internal/domain/keys"
	"textbook_rsa_service/internal/infrastructure/cryptography"
	"textbook_rsa_service/internal/infrastructure/persistence"
	"textbook_rsa_service/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds the application services for integration tests.
type TestServices struct {
	KeypairService keys.KeypairService
	MessageService keys.MessageService
}

// SetupTestServices initializes the full service stack over an in-memory
// SQLite database.
func SetupTestServices(t *testing.T) *TestServices {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	db := persistence.SetupTestDB(t)

	repo, err := persistence.NewGormKeypairRepository(db, log)
	require.NoError(t, err, "Failed to create keypair repository")

	oracle, err := cryptography.NewFermatOracle(log)
	require.NoError(t, err)
	searcher, err := cryptography.NewPrimeSearcher(oracle, 0, log)
	require.NoError(t, err)
	solver, err := cryptography.NewModularInverseSolver(log)
	require.NoError(t, err)
	generator, err := cryptography.NewKeypairGenerator(searcher, solver, log)
	require.NoError(t, err)

	codec, err := cryptography.NewBlockCodec(log)
	require.NoError(t, err)
	cipher, err := cryptography.NewCipher(log)
	require.NoError(t, err)
	messageCipher, err := cryptography.NewMessageCipher(codec, cipher, log)
	require.NoError(t, err)

	keypairService, err := NewKeypairService(generator, repo, log)
	require.NoError(t, err, "Failed to create keypair service")

	messageService, err := NewMessageService(repo, messageCipher, log)
	require.NoError(t, err, "Failed to create message service")

	return &TestServices{
		KeypairService: keypairService,
		MessageService: messageService,
	}
}
