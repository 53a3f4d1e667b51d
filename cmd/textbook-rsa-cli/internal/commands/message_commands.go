package commands

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	rsaDomain "textbook_rsa_service/internal/domain/rsa"
	"textbook_rsa_service/internal/infrastructure/cryptography"
	"textbook_rsa_service/internal/pkg/logger"
	"textbook_rsa_service/internal/pkg/timing"

	"github.com/spf13/cobra"
)

// MessageCommandHandler encapsulates logic for handling message operations via CLI.
type MessageCommandHandler struct {
	messageCipher rsaDomain.MessageCipher
	logger        logger.Logger
}

// NewMessageCommandHandler initializes a new MessageCommandHandler with
// logging and a message cipher.
func NewMessageCommandHandler() (*MessageCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	codec, err := cryptography.NewBlockCodec(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create block codec: %w", err)
	}

	cipher, err := cryptography.NewCipher(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	messageCipher, err := cryptography.NewMessageCipher(codec, cipher, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create message cipher: %w", err)
	}

	return &MessageCommandHandler{
		messageCipher: messageCipher,
		logger:        loggerInstance,
	}, nil
}

// EncryptMessageCmd encrypts a text file into decimal cipher blocks
func (commandHandler *MessageCommandHandler) EncryptMessageCmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: %v", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: %v", err)
		return
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		commandHandler.logger.Error("invalid public-key flag: %v", err)
		return
	}
	chunkSize, err := cmd.Flags().GetInt("chunk-size")
	if err != nil {
		commandHandler.logger.Error("invalid chunk-size flag: %v", err)
		return
	}

	modulus, exponent, err := readKeyFile(publicKeyPath)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}
	publicKey := &rsaDomain.PublicKey{N: modulus, E: exponent}

	plainText, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	stop := timing.Timed(commandHandler.logger, "encrypt-message")
	cipherBlocks, err := commandHandler.messageCipher.EncryptMessage(string(plainText), publicKey, chunkSize)
	stop()
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	lines := make([]string, len(cipherBlocks))
	for i, block := range cipherBlocks {
		lines[i] = block.String()
	}

	err = os.WriteFile(outputFile, []byte(strings.Join(lines, "\n")+"\n"), 0600)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	commandHandler.logger.Info("Encrypted data path ", outputFile)
}

// DecryptMessageCmd decrypts a file of decimal cipher blocks back into text
func (commandHandler *MessageCommandHandler) DecryptMessageCmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: %v", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: %v", err)
		return
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		commandHandler.logger.Error("invalid private-key flag: %v", err)
		return
	}

	modulus, exponent, err := readKeyFile(privateKeyPath)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}
	privateKey := &rsaDomain.PrivateKey{N: modulus, D: exponent}

	encryptedData, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	cipherBlocks := []*big.Int{}
	for i, line := range strings.Split(string(encryptedData), "\n") {
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		block, ok := new(big.Int).SetString(line, 10)
		if !ok {
			commandHandler.logger.Error("line %d of %s is not a decimal integer: %q", i+1, inputFile, line)
			return
		}
		cipherBlocks = append(cipherBlocks, block)
	}

	stop := timing.Timed(commandHandler.logger, "decrypt-message")
	text, err := commandHandler.messageCipher.DecryptMessage(cipherBlocks, privateKey)
	stop()
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	err = os.WriteFile(outputFile, []byte(text), 0600)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	commandHandler.logger.Info("Decrypted data path ", outputFile)
}

// InitMessageCommands registers message-related commands
func InitMessageCommands(rootCmd *cobra.Command) error {
	handler, err := NewMessageCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create message command handler %w", err)
	}

	var encryptMessageCmd = &cobra.Command{
		Use:   "encrypt-message",
		Short: "Encrypt a text file into decimal cipher blocks",
		Run:   handler.EncryptMessageCmd,
	}
	encryptMessageCmd.Flags().StringP("input-file", "", "", "Path to text file which needs to be encrypted")
	encryptMessageCmd.Flags().StringP("output-file", "", "", "Path to cipher block output file, one decimal block per line")
	encryptMessageCmd.Flags().StringP("public-key", "", "", "Path to public key file")
	encryptMessageCmd.Flags().IntP("chunk-size", "", 3, "Bytes packed into each block")
	rootCmd.AddCommand(encryptMessageCmd)

	var decryptMessageCmd = &cobra.Command{
		Use:   "decrypt-message",
		Short: "Decrypt a file of decimal cipher blocks",
		Run:   handler.DecryptMessageCmd,
	}
	decryptMessageCmd.Flags().StringP("input-file", "", "", "Path to cipher block file")
	decryptMessageCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file")
	decryptMessageCmd.Flags().StringP("private-key", "", "", "Path to private key file")
	rootCmd.AddCommand(decryptMessageCmd)

	return nil
}
