package commands

import (
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/passbook/internal/id"
	"github.com/cleared-dev/passbook/internal/members"
)

func newMembersCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "members",
		Short: "Run the fitness membership menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			runMembers(p, members.NewRegistry(), cfg.Bank.CurrencySymbol)
			return nil
		},
	}
}

func runMembers(p *prompter, reg *members.Registry, sym string) {
	for {
		p.println()
		p.println("--- MENU ---")
		p.println("1. Add Member")
		p.println("2. Show Basic Members")
		p.println("3. Show Premium Members")
		p.println("4. Show Family Members")
		p.println("5. Show All Members")
		p.println("6. Update Member")
		p.println("7. Delete Member")
		p.println("0. Exit")

		choice, ok := p.ask("Choose: ")
		if !ok || choice == "0" {
			break
		}

		switch choice {
		case "1":
			addMember(p, reg)
		case "2":
			showMemberGroup(p, "Basic", reg.ByKind(members.KindBasic), sym)
		case "3":
			showMemberGroup(p, "Premium", reg.ByKind(members.KindPremium), sym)
		case "4":
			showMemberGroup(p, "Family", reg.ByKind(members.KindFamily), sym)
		case "5":
			showMemberGroup(p, "All", reg.All(), sym)
		case "6":
			updateMember(p, reg, sym)
		case "7":
			deleteMember(p, reg)
		default:
			p.println("Invalid option.")
		}
	}
	p.println("Program ended.")
}

func showMemberGroup(p *prompter, title string, group []members.Member, sym string) {
	p.println()
	p.printf("--- %s Members ---\n", title)
	if len(group) == 0 {
		p.println("None")
		return
	}
	for _, m := range group {
		printMember(p, m, sym)
	}
}

func printMember(p *prompter, m members.Member, sym string) {
	fee, perks := members.Terms(m.Plan)
	p.println()
	p.printf("%s (%s)\n", m.Name, m.ID)
	p.printf("Type: %s\n", m.Plan.Label())
	p.printf("Fee: %s\n", formatMoney(sym, fee))
	p.printf("Perks: %s\n", strings.Join(perks, ", "))
}

func addMember(p *prompter, reg *members.Registry) {
	answer, ok := p.ask("Enter membership ID: ")
	if !ok {
		return
	}
	memberID, err := id.Normalize(answer)
	if err != nil {
		p.println("Membership ID cannot be empty!")
		return
	}
	if reg.Exists(memberID) {
		p.println("Membership ID already exists!")
		return
	}

	name, ok := p.ask("Enter name: ")
	if !ok {
		return
	}
	answer, ok = p.ask("Type (premium/basic/family): ")
	if !ok {
		return
	}
	kind, err := members.ParseKind(answer)
	if err != nil {
		p.println("Invalid type.")
		return
	}

	plan := members.Plan{Kind: kind}
	if kind == members.KindFamily {
		answer, ok = p.ask("Enter number of family members: ")
		if !ok {
			return
		}
		size, err := strconv.Atoi(answer)
		if err != nil || size < 1 {
			p.println("Invalid number of family members, using 1.")
			size = 1
		}
		plan.FamilySize = size
	}

	m := members.Member{ID: memberID, Name: name, Plan: plan}
	if err := reg.Add(m); err != nil {
		p.println(err)
		return
	}
	m, _ = reg.Get(memberID)
	p.printf("Added: %s %s (%s)\n", m.ID, m.Name, m.Plan.Label())
}

func updateMember(p *prompter, reg *members.Registry, sym string) {
	memberID, ok := p.ask("Enter membership ID to update: ")
	if !ok {
		return
	}
	name, ok := p.ask("Enter new name (or press Enter to keep current): ")
	if !ok {
		return
	}
	answer, ok := p.ask("Enter new membership type (premium/basic/family) OR press Enter to keep current: ")
	if !ok {
		return
	}

	var kind members.Kind
	if answer != "" {
		k, err := members.ParseKind(answer)
		if err != nil {
			p.println("Invalid type.")
			return
		}
		kind = k
	}

	m, err := reg.Update(memberID, name, kind)
	if errors.Is(err, members.ErrNotFound) {
		p.println("Member not found.")
		return
	}
	if err != nil {
		p.println(err)
		return
	}
	printMember(p, m, sym)
	p.println("Member updated successfully!")
}

func deleteMember(p *prompter, reg *members.Registry) {
	memberID, ok := p.ask("Enter ID to delete: ")
	if !ok {
		return
	}
	if err := reg.Delete(memberID); err != nil {
		p.println("Member not found.")
		return
	}
	p.println("Member deleted successfully.")
}
