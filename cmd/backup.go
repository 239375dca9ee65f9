/*
Copyright © 2025 Zachary Landes
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

// backupCmd represents the backup command
var backupCmd = &cobra.Command{
	Use:   "backup <destination>",
	Short: "Back up the idea collection",
	Long:  `Write a snapshot of the idea collection (ideas and canvas) to the given path.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ideaStore, err := GetStore()
		if err != nil {
			return err
		}
		defer func() { _ = ideaStore.Close() }()

		if err := ideaStore.Backup(args[0]); err != nil {
			return fmt.Errorf("backup failed: %w", err)
		}
		fmt.Printf("Backed up to %s\n", args[0])
		return nil
	},
}

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore <source>",
	Short: "Restore the idea collection from a backup",
	Long:  `Replace the current idea collection with the contents of a backup file. This overwrites everything; a confirmation prompt is shown first.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		confirmPrompt := promptui.Prompt{
			Label:     fmt.Sprintf("Replace all current ideas with %s", args[0]),
			IsConfirm: true,
		}
		if _, err := confirmPrompt.Run(); err != nil {
			if err == promptui.ErrAbort {
				fmt.Println("Restore cancelled.")
				return
			}
			fmt.Fprintf(os.Stderr, "Confirmation prompt failed: %v\n", err)
			os.Exit(1)
		}

		ideaStore, err := GetStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to get store: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = ideaStore.Close() }()

		if err := ideaStore.Restore(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Restore failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Restore complete.")
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
}
