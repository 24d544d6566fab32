package team

import "testing"

func TestTeamValidate(t *testing.T) {
	if err := (Team{Name: "Arsenal"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (Team{Name: "Arsenal", Wins: -1}).Validate(); err == nil {
		t.Fatalf("expected error for negative wins")
	}
	if err := (Team{Name: "Arsenal", Losses: -1}).Validate(); err == nil {
		t.Fatalf("expected error for negative losses")
	}
	if err := (Team{Name: "Arsenal", Draws: -1}).Validate(); err == nil {
		t.Fatalf("expected error for negative draws")
	}
}

func TestTeamPoints(t *testing.T) {
	item := Team{Wins: 5, Losses: 2, Draws: 3}
	if got := item.Points(); got != 18 {
		t.Fatalf("unexpected points: got=%d want=18", got)
	}
	if got := item.Played(); got != 10 {
		t.Fatalf("unexpected played: got=%d want=10", got)
	}
}
