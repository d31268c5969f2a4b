package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/swatter555/leadercorps/internal/catalog"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Browse the skill catalog",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all skills (optionally filtered by branch or category)",
	RunE: func(cmd *cobra.Command, args []string) error {
		branch, _ := cmd.Flags().GetString("branch")
		category, _ := cmd.Flags().GetString("category")

		var defs []catalog.SkillDefinition

		switch {
		case branch != "" && category != "":
			return fmt.Errorf("use --branch or --category, not both")
		case branch != "":
			defs = catalog.ByBranch(catalog.Branch(branch))
			if len(defs) == 0 {
				return fmt.Errorf("no skills found for branch %q", branch)
			}
		case category != "":
			for _, b := range catalog.BranchesInCategory(catalog.Category(category)) {
				defs = append(defs, catalog.ByBranch(b)...)
			}
			if len(defs) == 0 {
				return fmt.Errorf("no skills found for category %q", category)
			}
		default:
			defs = catalog.AllDefinitions()
		}

		// Header.
		fmt.Printf("%-55s  %-30s  %4s  %4s  %-13s  %s\n",
			"ID", "Name", "Tier", "Cost", "Min Grade", "Bonus")
		fmt.Println(strings.Repeat("─", 125))

		for _, d := range defs {
			name := d.Name
			if len(name) > 30 {
				name = name[:27] + "..."
			}
			bonus := fmt.Sprintf("%s +%g", d.Bonus, d.BonusValue)
			if d.IsPromotion {
				bonus += "  [promotion]"
			}
			fmt.Printf("%-55s  %-30s  %4d  %4d  %-13s  %s\n",
				d.ID, name, d.Tier, d.Cost, d.MinGrade, bonus)
		}

		fmt.Printf("\n%d skills\n", len(defs))
		return nil
	},
}

var skillShowCmd = &cobra.Command{
	Use:   "show <branch/code>",
	Short: "Show one skill's full definition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := catalog.ParseSkillID(args[0])
		if err != nil {
			return err
		}
		d, err := catalog.GetDefinition(id)
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s)\n", d.Name, d.ID)
		fmt.Printf("  Branch:    %s\n", catalog.BranchDisplayName(d.ID.Branch))
		fmt.Printf("  Tier:      %d (cost %d reputation)\n", d.Tier, d.Cost)
		fmt.Printf("  Min grade: %s\n", d.MinGrade)
		fmt.Printf("  Bonus:     %s +%g\n", d.Bonus, d.BonusValue)
		if d.IsPromotion {
			fmt.Println("  Promotion: advances command grade by one step")
		}
		if len(d.Prerequisites) > 0 {
			var ps []string
			for _, p := range d.Prerequisites {
				ps = append(ps, p.String())
			}
			fmt.Printf("  Requires:  %s\n", strings.Join(ps, ", "))
		}
		return nil
	},
}

var skillBranchesCmd = &cobra.Command{
	Use:   "branches",
	Short: "List branches grouped by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, cat := range catalog.AllCategories() {
			branches := catalog.BranchesInCategory(cat)
			fmt.Printf("%s (%d)\n", cat, len(branches))
			for _, b := range branches {
				fmt.Printf("  %-35s  %s  (%d skills)\n",
					b, catalog.BranchDisplayName(b), len(catalog.ByBranch(b)))
			}
		}
		return nil
	},
}

func init() {
	skillListCmd.Flags().String("branch", "", "Filter by branch (e.g. armored-doctrine)")
	skillListCmd.Flags().String("category", "", "Filter by category (foundation, doctrine, specialization)")

	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillShowCmd)
	skillCmd.AddCommand(skillBranchesCmd)
}
