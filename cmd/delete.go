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

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete [idea_id]",
	Short: "Delete an idea",
	Long:  `Delete an idea by its ID. If no ID is provided, an interactive list is shown. A confirmation prompt is always displayed before deletion.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ideaStore, err := GetStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to get store: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = ideaStore.Close() }()

		var ideaIDToDelete string
		var ideaTitle string

		if len(args) > 0 {
			ideaIDToDelete = args[0]
			idea, err := ideaStore.GetIdea(ideaIDToDelete)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to retrieve idea %s for deletion: %v\n", ideaIDToDelete, err)
				os.Exit(1)
			}
			ideaTitle = idea.Title
		} else {
			selected, err := selectIdeaInteractive(ideaStore, nil, "Select idea to delete")
			if err != nil {
				if err == promptui.ErrInterrupt {
					fmt.Println("Deletion cancelled.")
					return
				}
				if err == ErrNoIdeasFound {
					fmt.Println("No ideas available to delete.")
					return
				}
				fmt.Fprintf(os.Stderr, "Idea selection failed: %v\n", err)
				os.Exit(1)
			}
			ideaIDToDelete = selected.ID
			ideaTitle = selected.Title
		}

		confirmPrompt := promptui.Prompt{
			Label:     fmt.Sprintf("Are you sure you want to delete '%s' (ID: %s)?", ideaTitle, ideaIDToDelete),
			IsConfirm: true,
		}
		if _, err = confirmPrompt.Run(); err != nil {
			if err == promptui.ErrAbort {
				fmt.Println("Deletion cancelled.")
			} else {
				fmt.Fprintf(os.Stderr, "Confirmation prompt failed: %v\n", err)
			}
			os.Exit(1)
		}

		if err = ideaStore.DeleteIdea(ideaIDToDelete); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to delete idea %s: %v\n", ideaIDToDelete, err)
			os.Exit(1)
		}

		fmt.Printf("Idea %s deleted.\n", ideaIDToDelete)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
