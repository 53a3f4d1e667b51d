package commands

import (
	"fmt"

	rsaDomain "textbook_rsa_service/internal/domain/rsa"
	"textbook_rsa_service/internal/infrastructure/cryptography"
	"textbook_rsa_service/internal/pkg/logger"
	"textbook_rsa_service/internal/pkg/timing"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// KeyCommandHandler encapsulates logic for handling keypair operations via CLI.
type KeyCommandHandler struct {
	generator rsaDomain.KeypairGenerator
	logger    logger.Logger
}

// NewKeyCommandHandler initializes a new KeyCommandHandler with logging and a
// keypair generator.
func NewKeyCommandHandler() (*KeyCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	oracle, err := cryptography.NewFermatOracle(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create primality oracle: %w", err)
	}

	searcher, err := cryptography.NewPrimeSearcher(oracle, 0, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create prime searcher: %w", err)
	}

	solver, err := cryptography.NewModularInverseSolver(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create modular inverse solver: %w", err)
	}

	generator, err := cryptography.NewKeypairGenerator(searcher, solver, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create keypair generator: %w", err)
	}

	return &KeyCommandHandler{
		generator: generator,
		logger:    loggerInstance,
	}, nil
}

// GenerateKeysCmd generates a keypair and persists it in a selected directory
func (commandHandler *KeyCommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) {
	digitCount, err := cmd.Flags().GetInt("digit-count")
	if err != nil {
		commandHandler.logger.Error("invalid digit-count flag: %v", err)
		return
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		commandHandler.logger.Error("invalid key-dir flag: %v", err)
		return
	}

	params := &rsaDomain.GenerateParams{DigitCount: digitCount}

	firstSeed, err := cmd.Flags().GetString("first-seed")
	if err != nil {
		commandHandler.logger.Error("invalid first-seed flag: %v", err)
		return
	}
	if params.FirstSeed, err = parseSeed(firstSeed, "first-seed"); err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	secondSeed, err := cmd.Flags().GetString("second-seed")
	if err != nil {
		commandHandler.logger.Error("invalid second-seed flag: %v", err)
		return
	}
	if params.SecondSeed, err = parseSeed(secondSeed, "second-seed"); err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	exponentSeed, err := cmd.Flags().GetString("exponent-seed")
	if err != nil {
		commandHandler.logger.Error("invalid exponent-seed flag: %v", err)
		return
	}
	if params.ExponentSeed, err = parseSeed(exponentSeed, "exponent-seed"); err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	stop := timing.Timed(commandHandler.logger, "generate-keys")
	keypair, err := commandHandler.generator.Generate(params)
	stop()
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	uniqueID := uuid.New()

	publicKeyFilePath := fmt.Sprintf("%s/%s-public-key.txt", keyDir, uniqueID.String())
	if err = writeKeyFile(publicKeyFilePath, keypair.Public.N, keypair.Public.E); err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	privateKeyFilePath := fmt.Sprintf("%s/%s-private-key.txt", keyDir, uniqueID.String())
	if err = writeKeyFile(privateKeyFilePath, keypair.Private.N, keypair.Private.D); err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	commandHandler.logger.Info("Public key path ", publicKeyFilePath)
	commandHandler.logger.Info("Private key path ", privateKeyFilePath)
}

// InitKeyCommands registers keypair-related commands
func InitKeyCommands(rootCmd *cobra.Command) error {
	handler, err := NewKeyCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create key command handler %w", err)
	}

	var generateKeysCmd = &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate a keypair from digit-sized prime ranges",
		Run:   handler.GenerateKeysCmd,
	}
	generateKeysCmd.Flags().IntP("digit-count", "", 4, "Number of decimal digits for each prime")
	generateKeysCmd.Flags().StringP("first-seed", "", "", "Decimal seed for the first prime search (random when omitted)")
	generateKeysCmd.Flags().StringP("second-seed", "", "", "Decimal seed for the second prime search (random when omitted)")
	generateKeysCmd.Flags().StringP("exponent-seed", "", "", "Decimal seed for the public exponent search (random when omitted)")
	generateKeysCmd.Flags().StringP("key-dir", "", "", "Directory to store the keys")
	rootCmd.AddCommand(generateKeysCmd)

	return nil
}
