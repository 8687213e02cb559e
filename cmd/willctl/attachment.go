package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var attachmentCmd = &cobra.Command{
	Use:   "attachment",
	Short: "Work with will attachments",
}

var attachmentUploadCmd = &cobra.Command{
	Use:   "upload-url [will-id]",
	Short: "Get a presigned URL to upload an attachment",
	Long:  `Prints a presigned PUT URL. Upload the document with any HTTP client; the server records the storage key on the will.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := newClient()
		defer svc.Close()

		url, err := svc.AttachmentUploadURL(context.Background(), args[0])
		if err != nil {
			fatal("Error requesting upload URL", err)
		}
		fmt.Fprintln(os.Stdout, url)
	},
}

var attachmentDownloadCmd = &cobra.Command{
	Use:   "download-url [will-id]",
	Short: "Get a presigned URL to download the attachment",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := newClient()
		defer svc.Close()

		url, err := svc.AttachmentDownloadURL(context.Background(), args[0])
		if err != nil {
			fatal("Error requesting download URL", err)
		}
		fmt.Fprintln(os.Stdout, url)
	},
}

func init() {
	attachmentCmd.AddCommand(attachmentUploadCmd)
	attachmentCmd.AddCommand(attachmentDownloadCmd)
	rootCmd.AddCommand(attachmentCmd)
}
