package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swatter555/leadercorps/internal/catalog"
	"github.com/swatter555/leadercorps/internal/leader"
	"github.com/swatter555/leadercorps/internal/skilltree"
	"github.com/swatter555/leadercorps/internal/store"
	"github.com/swatter555/leadercorps/internal/ui/theme"
)

var leaderCmd = &cobra.Command{
	Use:   "leader",
	Short: "Manage leaders and their skill trees",
}

var leaderCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new leader",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		abilityName, _ := cmd.Flags().GetString("ability")
		ability, err := parseAbility(abilityName)
		if err != nil {
			return err
		}

		l, err := leader.New(args[0], ability)
		if err != nil {
			return err
		}

		s, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		l.AwardReputation(cfg.InitialReputation)
		if err := s.LeaderRepo().Save(context.Background(), l.Record()); err != nil {
			return err
		}
		fmt.Printf("Created leader %s (%s, %s)\n", l.Name, l.Ability, l.ID)
		return nil
	},
}

var leaderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all leaders",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		recs, err := s.LeaderRepo().List(context.Background())
		if err != nil {
			return err
		}
		if len(recs) == 0 {
			fmt.Println("No leaders yet. Create one with: leadercorps leader create <name>")
			return nil
		}
		for _, rec := range recs {
			l, err := leader.FromRecord(rec)
			if err != nil {
				return err
			}
			fmt.Printf("%-36s  %-20s  %-12s  %4d rep  %d skills\n",
				l.ID, l.Name, l.Grade(), l.Reputation(), len(l.Tree().UnlockedSkills()))
		}
		return nil
	},
}

var leaderShowCmd = &cobra.Command{
	Use:   "show <name-or-id>",
	Short: "Show a leader's skill tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		l, err := loadLeader(context.Background(), s.LeaderRepo(), args[0])
		if err != nil {
			return err
		}
		renderLeader(l)
		return nil
	},
}

var leaderAwardCmd = &cobra.Command{
	Use:   "award <name-or-id> <action>",
	Short: "Award reputation for a gameplay action",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := leader.ParseActionKind(args[1])
		if err != nil {
			return fmt.Errorf("%w (valid: %v)", err, leader.AllActions())
		}
		multiplier, _ := cmd.Flags().GetFloat64("multiplier")

		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		l, err := loadLeader(ctx, s.LeaderRepo(), args[0])
		if err != nil {
			return err
		}
		amount, err := l.AwardReputationForAction(kind, multiplier)
		if err != nil {
			return err
		}
		if err := s.LeaderRepo().Save(ctx, l.Record()); err != nil {
			return err
		}
		fmt.Printf("Awarded %d reputation to %s for %s (balance %d)\n",
			amount, l.Name, kind, l.Reputation())
		return nil
	},
}

var leaderUnlockCmd = &cobra.Command{
	Use:   "unlock <name-or-id> <branch/code>",
	Short: "Unlock a skill",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := catalog.ParseSkillID(args[1])
		if err != nil {
			return err
		}

		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		l, err := loadLeader(ctx, s.LeaderRepo(), args[0])
		if err != nil {
			return err
		}
		if !l.UnlockSkill(id) {
			fmt.Println(theme.Hint.Render(explainDisqualification(l, id)))
			return nil
		}
		if err := s.LeaderRepo().Save(ctx, l.Record()); err != nil {
			return err
		}
		for _, ev := range l.DrainEvents() {
			switch ev.Kind {
			case skilltree.EventSkillUnlocked:
				fmt.Println(theme.Unlocked.Render(fmt.Sprintf("Unlocked %s", ev.Skill)))
			case skilltree.EventGradeChanged:
				fmt.Println(theme.Title.Render(fmt.Sprintf("Promoted: %s → %s", ev.FromGrade, ev.ToGrade)))
			}
		}
		fmt.Printf("Remaining reputation: %d\n", l.Reputation())
		return nil
	},
}

var leaderResetCmd = &cobra.Command{
	Use:   "reset <name-or-id>",
	Short: "Respec: refund and clear all non-Foundation skills",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		l, err := loadLeader(ctx, s.LeaderRepo(), args[0])
		if err != nil {
			return err
		}
		if !l.ResetSkills() {
			fmt.Println("Nothing to reset.")
			return nil
		}
		if err := s.LeaderRepo().Save(ctx, l.Record()); err != nil {
			return err
		}
		for _, ev := range l.DrainEvents() {
			if ev.Kind == skilltree.EventSkillsReset {
				fmt.Printf("Reset complete: refunded %d reputation (balance %d)\n",
					ev.Refund, l.Reputation())
			}
		}
		return nil
	},
}

var leaderDeleteCmd = &cobra.Command{
	Use:   "delete <name-or-id>",
	Short: "Delete a leader",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		l, err := loadLeader(ctx, s.LeaderRepo(), args[0])
		if err != nil {
			return err
		}
		if err := s.LeaderRepo().Delete(ctx, l.ID); err != nil {
			return err
		}
		fmt.Printf("Deleted leader %s (%s)\n", l.Name, l.ID)
		return nil
	},
}

func init() {
	leaderCreateCmd.Flags().String("ability", "average",
		"Command ability: poor, below-average, average, good, superior")
	leaderAwardCmd.Flags().Float64("multiplier", 1, "Award multiplier")

	leaderCmd.AddCommand(leaderCreateCmd)
	leaderCmd.AddCommand(leaderListCmd)
	leaderCmd.AddCommand(leaderShowCmd)
	leaderCmd.AddCommand(leaderAwardCmd)
	leaderCmd.AddCommand(leaderUnlockCmd)
	leaderCmd.AddCommand(leaderResetCmd)
	leaderCmd.AddCommand(leaderDeleteCmd)
}

// loadLeader resolves the argument as an ID first, then as a name.
func loadLeader(ctx context.Context, repo store.LeaderRepo, arg string) (*leader.Leader, error) {
	rec, err := repo.Get(ctx, arg)
	if errors.Is(err, store.ErrNotFound) {
		rec, err = repo.FindByName(ctx, arg)
	}
	if err != nil {
		return nil, fmt.Errorf("leader %q: %w", arg, err)
	}
	return leader.FromRecord(rec)
}

func parseAbility(s string) (leader.CommandAbility, error) {
	switch s {
	case "poor":
		return leader.AbilityPoor, nil
	case "below-average":
		return leader.AbilityBelowAverage, nil
	case "average":
		return leader.AbilityAverage, nil
	case "good":
		return leader.AbilityGood, nil
	case "superior":
		return leader.AbilitySuperior, nil
	}
	return 0, fmt.Errorf("unrecognized command ability: %q", s)
}

// renderLeader prints the leader header and the full tree, coloring each
// skill by its state for this leader.
func renderLeader(l *leader.Leader) {
	fmt.Println(theme.Title.Render(l.Name))
	fmt.Println(theme.Subtitle.Render(fmt.Sprintf("%s · %s ability · %d reputation",
		l.Grade(), l.Ability, l.Reputation())))
	fmt.Println()

	for _, cat := range catalog.AllCategories() {
		fmt.Println(theme.Body.Render(string(cat)))
		for _, b := range catalog.BranchesInCategory(cat) {
			marker := " "
			if l.HasStartedBranch(b) {
				marker = "*"
			} else if !l.IsBranchAvailable(b) {
				marker = "x"
			}
			fmt.Printf("  %s %s\n", marker, catalog.BranchDisplayName(b))
			for _, d := range catalog.ByBranch(b) {
				line := fmt.Sprintf("      %-30s  T%d  %3d rep  %s +%g",
					d.Name, d.Tier, d.Cost, d.Bonus, d.BonusValue)
				switch {
				case l.IsSkillUnlocked(d.ID):
					fmt.Println(theme.Unlocked.Render(line + "  [unlocked]"))
				case l.CanUnlockSkill(d.ID):
					fmt.Println(theme.Available.Render(line))
				default:
					fmt.Println(theme.Locked.Render(line))
				}
			}
		}
		fmt.Println()
	}
}

// explainDisqualification names the first failed unlock constraint, for CLI
// feedback only — the engine itself reports a bare boolean.
func explainDisqualification(l *leader.Leader, id catalog.SkillID) string {
	if id.IsNone() {
		return "no skill selected"
	}
	if l.IsSkillUnlocked(id) {
		return fmt.Sprintf("%s is already unlocked", id)
	}
	def, err := catalog.GetDefinition(id)
	if err != nil {
		return err.Error()
	}
	if l.Reputation() < def.Cost {
		return fmt.Sprintf("insufficient reputation: need %d, have %d", def.Cost, l.Reputation())
	}
	if l.Grade() < def.MinGrade {
		return fmt.Sprintf("requires %s, currently %s", def.MinGrade, l.Grade())
	}
	for _, p := range def.Prerequisites {
		if !l.IsSkillUnlocked(p) {
			return fmt.Sprintf("missing prerequisite %s", p)
		}
	}
	if !l.IsBranchAvailable(id.Branch) {
		return fmt.Sprintf("branch %s is closed by an exclusive branch in its category",
			catalog.BranchDisplayName(id.Branch))
	}
	return "skill cannot be unlocked"
}
