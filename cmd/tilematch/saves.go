package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akarpenko/tilematch/internal/session"
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "Manage mid-game save files",
	Long: `List or delete saved games. Saves are created in-game with Ctrl+O
and resumed with 'tilematch play <mode> --resume <name>'.`,
	Run: runSavesList,
}

var savesDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved game",
	Args:  cobra.ExactArgs(1),
	Run:   runSavesDelete,
}

func init() {
	savesCmd.AddCommand(savesDeleteCmd)
}

func openSaves() *session.SaveService {
	svc, err := session.NewSaveService(session.DefaultDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return svc
}

func runSavesList(_ *cobra.Command, _ []string) {
	svc := openSaves()

	infos, err := svc.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(infos) == 0 {
		fmt.Println("No saved games.")
		fmt.Println()
		fmt.Println("Press Ctrl+O during a game to save it.")
		return
	}

	fmt.Println("Saved games:")
	fmt.Println()
	fmt.Printf("  %-16s  %-6s  %-8s  %s\n", "Name", "Mode", "Score", "Saved")
	fmt.Printf("  %-16s  %-6s  %-8s  %s\n", "----", "----", "-----", "-----")
	for _, info := range infos {
		fmt.Printf("  %-16s  %-6s  %-8d  %s\n",
			info.Name, info.Mode, info.Score,
			info.SavedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Resume with 'tilematch play <mode> --resume <name>'.")
}

func runSavesDelete(_ *cobra.Command, args []string) {
	svc := openSaves()

	if err := svc.Delete(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted save %q.\n", args[0])
}
