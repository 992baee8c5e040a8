package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"contractseal/internal/app"
	"contractseal/internal/domain"
)

// demo [content]: run the two-party flow: the company signs, the
// supplier verifies and countersigns, the document is exported and
// archived, then the company sends one confidential timestamped message.
func demoCmd() *cobra.Command {
	var sealPassphrase string
	cmd := &cobra.Command{
		Use:   "demo [content]",
		Short: "Run the two-party co-signing and messaging flow",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content := "This is the contract between Company XYZ and Supplier ABC."
			if len(args) == 1 {
				content = args[0]
			}
			return runDemo(wire, logger, content, sealPassphrase)
		},
	}
	cmd.Flags().StringVar(&sealPassphrase, "seal-passphrase", "", "also archive a passphrase-sealed copy")
	return cmd
}

// runDemo drives the workflow with explicit collaborators.
func runDemo(w *app.Wire, log zerolog.Logger, content, sealPassphrase string) error {
	doc := domain.NewDocument(content)

	company, err := w.Parties.GenerateParty("Company XYZ")
	if err != nil {
		return err
	}
	supplier, err := w.Parties.GenerateParty("Supplier ABC")
	if err != nil {
		return err
	}
	log.Info().
		Str("doc", string(doc.ID)).
		Str("company", w.Parties.FingerprintParty(company)).
		Str("supplier", w.Parties.FingerprintParty(supplier)).
		Msg("parties generated")

	if err := w.Contracts.Sign(doc, company); err != nil {
		return err
	}
	log.Info().Str("signer", company.Name).Msg("document signed")

	// The supplier verifies the company's signature before adding its own.
	if err := w.Contracts.Countersign(doc, supplier); err != nil {
		return err
	}
	log.Info().Str("signer", supplier.Name).Msg("document countersigned")

	out, err := doc.Export()
	if err != nil {
		return err
	}
	fmt.Println("Final document:")
	fmt.Println(out)

	if err := w.Archive.Save(doc.Exported()); err != nil {
		return err
	}
	if sealPassphrase != "" {
		if err := w.Archive.SaveSealed(doc.Exported(), sealPassphrase); err != nil {
			return err
		}
		log.Info().Str("doc", string(doc.ID)).Msg("sealed copy archived")
	}

	// Confidential message from the company to the supplier, bound to the
	// send timestamp. The timestamp travels out of band; here that is the
	// returned value handed straight to Open.
	msg, err := w.Channel.Seal("Hello Supplier ABC, this is a confidential message.", supplier.Keys.Public)
	if err != nil {
		return err
	}
	log.Info().Str("timestamp", msg.Timestamp).Int("bytes", len(msg.Ciphertext)).Msg("message sealed")

	plain, err := w.Channel.Open(msg.Ciphertext, supplier.Keys.Private, msg.Timestamp)
	if err != nil {
		return err
	}
	fmt.Printf("\nDecrypted message: %s\n", plain)
	return nil
}
