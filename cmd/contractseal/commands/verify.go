package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"contractseal/internal/domain"
)

// verify <document-id>: re-check every signature of an archived document
// against its content, using the public key inlined in each certificate.
func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <document-id>",
		Short: "Verify all signatures of an archived document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.DocumentID(args[0])
			doc, found, err := wire.Archive.Load(id)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("document %s not found in archive", id)
			}
			for i, rec := range doc.Signatures {
				ok, err := wire.Contracts.VerifyRecord(doc.Content, rec)
				if err != nil {
					return err
				}
				status := "valid"
				if !ok {
					status = "INVALID"
				}
				fmt.Printf("%d  %-24s %s  %s\n", i+1, rec.Certificate.Name, rec.Timestamp, status)
			}
			return nil
		},
	}
}
