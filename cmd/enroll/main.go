// Command enroll runs the registration wizard against a CareerBridge server
// from the terminal. It restores a persisted session on start and walks the
// four-step flow, submitting once at the end.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/careerbridge/careerbridge-api/internal/client"
	"github.com/careerbridge/careerbridge-api/internal/client/session"
	"github.com/careerbridge/careerbridge-api/internal/client/wizard"
	"github.com/careerbridge/careerbridge-api/internal/core/domain"
)

func main() {
	server := flag.String("server", "http://localhost:8080", "API base URL")
	sessionPath := flag.String("session", defaultSessionPath(), "session file location")
	flag.Parse()

	ctx := context.Background()
	api := client.New(*server)
	store := session.NewStore(*sessionPath)

	// Session bootstrap: adopt a stored identity without a round-trip, then
	// let the first protected request decide whether it still holds.
	if sess, err := store.Load(); err == nil && sess != nil {
		user, err := api.Me(ctx, sess.Token)
		if err == nil {
			fmt.Printf("Already logged in as %s (%s)\n", user.Name, user.Email)
			return
		}
		if errors.Is(err, domain.ErrMissingToken) || errors.Is(err, domain.ErrInvalidToken) {
			_ = store.Clear()
			fmt.Println("Stored session expired, starting over.")
		}
	}

	w := wizard.New(api)
	in := bufio.NewReader(os.Stdin)

	for w.State() != wizard.StateSucceeded {
		switch w.State() {
		case wizard.StateBasic:
			d := w.Draft()
			d.Name = prompt(in, "Full name", d.Name)
			d.Email = prompt(in, "Email", d.Email)
			d.Password = prompt(in, "Password", "")
			d.ConfirmPassword = prompt(in, "Confirm password", "")
		case wizard.StatePersonal:
			d := w.Draft()
			d.Phone = prompt(in, "Phone", d.Phone)
			d.DateOfBirth = prompt(in, "Date of birth (YYYY-MM-DD)", d.DateOfBirth)
			d.Address.Line = prompt(in, "Address", d.Address.Line)
			d.Address.City = prompt(in, "City", d.Address.City)
			d.Address.Zip = prompt(in, "ZIP", d.Address.Zip)
			d.Gender = prompt(in, "Gender (optional)", d.Gender)
		case wizard.StateProfessional:
			d := w.Draft()
			d.Employment = prompt(in, "Current employment", d.Employment)
			d.Education = prompt(in, "Education", d.Education)
		case wizard.StatePreferences:
			d := w.Draft()
			d.SalaryExpectation = prompt(in, "Salary expectation (optional)", d.SalaryExpectation)
			d.PreferredLocation = prompt(in, "Preferred location (optional)", d.PreferredLocation)
			services := prompt(in, "Interested services (comma-separated)", strings.Join(d.InterestedServices, ","))
			d.InterestedServices = splitList(services)

			if path := prompt(in, "Resume file (optional)", ""); path != "" {
				if err := attachResume(w, path); err != nil {
					fmt.Println("Resume rejected:", err)
					continue
				}
			}

			result, err := w.Submit(ctx)
			if err != nil {
				fmt.Println("Registration failed:", err)
				w.Prev() // back to preferences with the draft intact
				continue
			}
			if err := store.Save(&session.Session{Token: result.Token, User: result.User}); err != nil {
				fmt.Println("Warning: session not persisted:", err)
			}
			fmt.Printf("Welcome, %s! Your profile is complete.\n", result.User.Name)
			return
		}

		if err := w.Next(); err != nil {
			fmt.Println(err)
		}
	}
}

func prompt(in *bufio.Reader, label, current string) string {
	if current != "" {
		fmt.Printf("%s [%s]: ", label, current)
	} else {
		fmt.Printf("%s: ", label)
	}
	line, _ := in.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	return line
}

func attachResume(w *wizard.Wizard, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	return w.AttachResume(filepath.Base(path), info.Size(), f)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".careerbridge-session.json"
	}
	return filepath.Join(home, ".careerbridge", "session.json")
}
