// The dashboard command is a terminal client for the wellness API: it
// signs in (or rehydrates a saved session), optionally records a new log
// entry, and prints the entry list with quick stats. Without API_BASE_URL
// it runs fully standalone against the in-memory fallback backend.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/yourname/wellnesstracker/internal"
	"github.com/yourname/wellnesstracker/internal/client"
	"github.com/yourname/wellnesstracker/internal/config"
	"github.com/yourname/wellnesstracker/internal/dashboard"
	"github.com/yourname/wellnesstracker/internal/session"
	"github.com/yourname/wellnesstracker/internal/validation"
)

func main() {
	var (
		email    = flag.String("email", "", "email to log in with")
		password = flag.String("password", "", "password to log in with")
		signup   = flag.Bool("signup", false, "create an account instead of logging in")
		mood     = flag.String("mood", "", "record a new entry with this mood (Happy, Stressed, Tired, Focused)")
		sleep    = flag.Float64("sleep", 0, "sleep duration in hours for the new entry")
		notes    = flag.String("notes", "", "activity notes for the new entry")
		remove   = flag.String("delete", "", "delete the entry with this id")
		logout   = flag.Bool("logout", false, "clear the saved session and exit")
	)
	flag.Parse()

	cfg := config.Load()
	logger, err := internal.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	sess := session.NewStore(cfg.SessionFile, logger)
	sess.Load()

	if *logout {
		if err := sess.Clear(); err != nil {
			logger.Fatalf("failed to clear session: %v", err)
		}
		fmt.Println("Logged out.")
		return
	}

	api := client.New(cfg, sess, logger)
	ctx := context.Background()

	if !sess.Authenticated() {
		res, err := authenticate(ctx, api, *signup, *email, *password)
		if err != nil {
			logger.Fatalf("authentication failed: %v", err)
		}
		if err := sess.SetCredentials(res.Token, res.User); err != nil {
			logger.Fatalf("failed to persist session: %v", err)
		}
	}

	user := sess.User()
	fmt.Printf("Signed in as %s\n\n", user.Email)

	dash := dashboard.New(api, *user, logger)
	if err := dash.Refresh(ctx); err != nil {
		logger.Fatalf("%s: %v", dash.Err(), err)
	}

	if *remove != "" {
		if err := dash.Delete(ctx, *remove); err != nil {
			logger.Fatalf("failed to delete entry %s: %v", *remove, err)
		}
		fmt.Printf("Deleted entry %s\n\n", *remove)
	}

	if *mood != "" {
		form := internal.WellnessLogForm{
			Mood:          internal.Mood(*mood),
			SleepDuration: *sleep,
			ActivityNotes: *notes,
		}
		if errs := validation.WellnessLogForm(form); validation.HasErrors(errs) {
			for field, msg := range errs {
				fmt.Fprintf(os.Stderr, "%s: %s\n", field, msg)
			}
			os.Exit(1)
		}
		created, err := dash.Create(ctx, form)
		if err != nil {
			logger.Fatalf("%s: %v", dash.Err(), err)
		}
		fmt.Printf("Recorded entry %s\n\n", created.ID)
	}

	printStats(dash.Stats())
	printLogs(dash.Logs())
}

func authenticate(ctx context.Context, api client.Backend, signup bool, email, password string) (*internal.AuthResponse, error) {
	if signup {
		data := internal.SignupData{Email: email, Password: password, ConfirmPassword: password}
		if errs := validation.SignupForm(data); validation.HasErrors(errs) {
			return nil, formError(errs)
		}
		return api.Signup(ctx, data)
	}
	data := internal.LoginData{Email: email, Password: password}
	if errs := validation.LoginForm(data); validation.HasErrors(errs) {
		return nil, formError(errs)
	}
	return api.Login(ctx, data)
}

func formError(errs validation.Errors) error {
	for field, msg := range errs {
		fmt.Fprintf(os.Stderr, "%s: %s\n", field, msg)
	}
	return fmt.Errorf("form has %d invalid field(s)", len(errs))
}

func printStats(s dashboard.Stats) {
	if s.TotalLogs == 0 {
		fmt.Println("No entries yet.")
		return
	}
	fmt.Println("Quick Stats")
	fmt.Printf("  Total logs:    %d\n", s.TotalLogs)
	fmt.Printf("  Avg sleep:     %.1fh\n", s.AverageSleep)
	fmt.Printf("  Happy days:    %d\n", s.HappyDays)
	fmt.Printf("  Days tracking: %d\n\n", s.DaysTracking)
}

func printLogs(logs []internal.WellnessLog) {
	for _, l := range logs {
		fmt.Printf("%s  %-9s  %4.1fh  %s\n    %s\n",
			l.CreatedAt.Format("2006-01-02 15:04"), l.Mood, l.SleepDuration, l.ID, l.ActivityNotes)
	}
}
