package services

import (
	"strings"
	"testing"

	"betTrackerBot/models/external"
)

func assertEqual(t *testing.T, expected, actual interface{}, msg string) {
	t.Helper()
	if expected != actual {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

func TestGroupInjuries(t *testing.T) {
	injuries := []external.Injury{
		{Player: "LeBron James", Team: "Los Angeles Lakers", Status: "Out", Injury: "Ankle"},
		{Player: "Luka Doncic", Team: "Dallas Mavericks", Status: "Day-To-Day", Injury: "Calf"},
		{Player: "Joel Embiid", Team: "Philadelphia 76ers", Status: "Doubtful", Injury: "Knee"},
		{Player: "Jayson Tatum", Team: "Boston Celtics", Status: "Questionable", Injury: "Wrist"},
		{Player: "Kevin Durant", Team: "Phoenix Suns", Status: "Probable", Injury: "Rest"},
	}

	out, doubtful, questionable := groupInjuries(injuries)

	assertEqual(t, 1, len(out), "out count")
	assertEqual(t, "LeBron James", out[0].Player, "out player")
	assertEqual(t, 1, len(doubtful), "doubtful count")
	assertEqual(t, "Joel Embiid", doubtful[0].Player, "doubtful player")
	// Day-to-day lands in the questionable bucket; probable is dropped.
	assertEqual(t, 2, len(questionable), "questionable count")
	assertEqual(t, "Luka Doncic", questionable[0].Player, "day-to-day player")
	assertEqual(t, "Jayson Tatum", questionable[1].Player, "questionable player")
}

func TestGroupInjuries_Empty(t *testing.T) {
	out, doubtful, questionable := groupInjuries(nil)
	assertEqual(t, 0, len(out), "out count")
	assertEqual(t, 0, len(doubtful), "doubtful count")
	assertEqual(t, 0, len(questionable), "questionable count")
}

func TestAppendInjuryGroup(t *testing.T) {
	injuries := make([]external.Injury, 20)
	for i := range injuries {
		injuries[i] = external.Injury{Player: "Player", Team: "Team", Injury: "Knee", Status: "Out"}
	}

	lines := appendInjuryGroup([]string{"header"}, "OUT", injuries, 15)

	// header + group label + 15 capped entries
	assertEqual(t, 17, len(lines), "line count")
	assertEqual(t, "\n**OUT:**", lines[1], "group label")
	assertEqual(t, "• Player (Team) - Knee", lines[2], "entry format")

	empty := appendInjuryGroup([]string{"header"}, "DOUBTFUL", nil, 10)
	assertEqual(t, 1, len(empty), "empty group adds nothing")
	if strings.Contains(strings.Join(empty, "\n"), "DOUBTFUL") {
		t.Errorf("empty group should not emit a label")
	}
}
