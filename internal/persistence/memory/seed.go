package memory

import "github.com/djerroudsalim/studious-octo-winner/internal/domain"

// SeedActivities returns the fixed activity set the service starts with.
func SeedActivities() []domain.Activity {
	return []domain.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Basketball",
			Description:     "Team basketball games and drills",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"alex@mergington.edu"},
		},
		{
			Name:            "Tennis Club",
			Description:     "Tennis lessons and competitive matches",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 10,
			Participants:    []string{"sarah@mergington.edu"},
		},
		{
			Name:            "Art Studio",
			Description:     "Painting, drawing, and visual arts projects",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"jessica@mergington.edu", "mark@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Theater performances and acting workshops",
			Schedule:        "Mondays and Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"lucas@mergington.edu"},
		},
		{
			Name:            "Debate Team",
			Description:     "Competitive debate and public speaking",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 16,
			Participants:    []string{"rachel@mergington.edu", "james@mergington.edu"},
		},
		{
			Name:            "Science Club",
			Description:     "Hands-on science experiments and research projects",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"carlos@mergington.edu"},
		},
	}
}
