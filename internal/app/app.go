// Package app runs the interactive play loop: it fetches content, drives
// the session engine from terminal input, and renders feedback and the
// session summary.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/oriolmontal/lingodrill/internal/challenge"
	"github.com/oriolmontal/lingodrill/internal/content"
	"github.com/oriolmontal/lingodrill/internal/session"
)

// Options wires the play loop's collaborators.
type Options struct {
	Engine  *session.Engine
	Content content.Provider
	Params  content.FetchParams

	// StudyMode plays without hearts, XP, or statistics.
	StudyMode bool

	// In and Out default to the caller's choice of terminal streams.
	In  io.Reader
	Out io.Writer
}

// Run plays one session and, when mistakes were made, offers a review
// round. Returns the user-visible error for content fetch failures; all
// other degradations are handled inside the engine.
func Run(ctx context.Context, opts Options) error {
	in := bufio.NewScanner(opts.In)
	out := opts.Out

	challenges, err := opts.Content.Fetch(ctx, opts.Params)
	if err != nil {
		return err
	}

	sess, err := opts.Engine.Start(ctx, session.StartParams{
		Challenges:    challenges,
		ChallengeType: opts.Params.Type,
		Language:      opts.Params.Language,
		Level:         opts.Params.Level,
		Source:        opts.Params.Source,
		CategoryTotal: len(challenges),
		StudyMode:     opts.StudyMode,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, styleTitle.Render(fmt.Sprintf("%s %s — %s %s",
		opts.Params.Type.Icon(), opts.Params.Type.DisplayName(),
		opts.Params.Language, opts.Params.Level)))
	fmt.Fprintln(out, styleHint.Render("Type the option number (or your answer), q to quit."))
	fmt.Fprintln(out)

	summary, err := playSession(ctx, opts.Engine, sess, in, out)
	if err != nil {
		return err
	}
	renderSummary(out, summary)

	if len(summary.Incorrect) > 0 {
		fmt.Fprint(out, "Review your mistakes? [y/N] ")
		if in.Scan() && strings.EqualFold(strings.TrimSpace(in.Text()), "y") {
			review, err := opts.Engine.ReviewMistakes(ctx, summary)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, styleTitle.Render("Mistake review — nothing at stake, just practice."))
			reviewSummary, err := playSession(ctx, opts.Engine, review, in, out)
			if err != nil {
				return err
			}
			renderSummary(out, reviewSummary)
		}
	}
	return nil
}

// playSession drives one session to its summary.
func playSession(ctx context.Context, eng *session.Engine, sess *session.Session, in *bufio.Scanner, out io.Writer) (*session.Summary, error) {
	total := len(sess.Challenges)

	for {
		cur := sess.Current()
		if cur == nil {
			break
		}

		payload, err := content.DecodePayload(*cur)
		if err != nil {
			// Unrenderable content is a bug in the provider, not the user.
			return nil, err
		}

		fmt.Fprintf(out, "[%d/%d] %s\n", sess.CurrentIndex+1, total, stylePrompt.Render(payload.Prompt))
		for i, opt := range payload.Options {
			fmt.Fprintf(out, "  %s\n", styleOption.Render(fmt.Sprintf("%d) %s", i+1, opt)))
		}
		fmt.Fprint(out, "> ")

		if !in.Scan() {
			return eng.Quit(ctx, sess)
		}
		input := strings.TrimSpace(in.Text())
		if strings.EqualFold(input, "q") {
			return eng.Quit(ctx, sess)
		}

		isCorrect := checkAnswer(payload, input)

		result, err := eng.Answer(ctx, sess, cur.ID, isCorrect)
		if err != nil {
			return nil, err
		}

		renderFeedback(out, payload, result)

		switch {
		case result.SessionComplete:
			return eng.End(ctx, sess)
		case result.OutOfHearts:
			fmt.Fprintln(out, styleIncorrect.Render("Out of hearts!"))
			if ri := result.HeartResponse.RefillInfo; ri != nil {
				fmt.Fprintln(out, styleHint.Render(fmt.Sprintf("Next heart in %ds.", ri.WaitSeconds)))
			}
			return eng.End(ctx, sess)
		case result.AutoAdvance:
			if err := eng.Advance(sess); err != nil {
				return nil, err
			}
		default:
			// native_check keeps an undo window open; here it is just an
			// explicit confirmation before moving on.
			fmt.Fprint(out, styleHint.Render("Press enter to continue..."))
			in.Scan()
			fmt.Fprintln(out)
			if err := eng.Advance(sess); err != nil {
				return nil, err
			}
		}
		fmt.Fprintln(out)
	}

	return eng.End(ctx, sess)
}

// checkAnswer compares the input against the payload: an option number or
// exact option text for choice types, trimmed case-insensitive match for
// free input.
func checkAnswer(p content.Payload, input string) bool {
	if len(p.Options) > 0 {
		if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(p.Options) {
			return p.Options[n-1] == p.Answer
		}
		return strings.EqualFold(input, p.Answer)
	}
	return strings.EqualFold(strings.TrimSpace(input), strings.TrimSpace(p.Answer))
}

func renderFeedback(out io.Writer, p content.Payload, result *session.AnswerResult) {
	if result.Correct {
		line := styleCorrect.Render("✓ Correct!")
		if result.XPAwarded > 0 {
			line += " " + styleXP.Render(fmt.Sprintf("+%d XP", result.XPAwarded))
			if result.Score.SpeedBonus > 0 {
				line += styleHint.Render(fmt.Sprintf(" (includes +%d speed bonus)", result.Score.SpeedBonus))
			}
		}
		if result.AlreadyCompletedToday {
			line += " " + styleHint.Render("(already completed today)")
		}
		if result.Combo >= 2 {
			line += " " + styleXP.Render(fmt.Sprintf("combo x%d", result.Combo))
		}
		fmt.Fprintln(out, line)
	} else {
		fmt.Fprintln(out, styleIncorrect.Render("✗ Not quite."))
		fmt.Fprintln(out, "  Answer: "+stylePrompt.Render(p.Answer))
	}
	if p.Explanation != "" && !result.Correct {
		fmt.Fprintln(out, styleHint.Render("  "+p.Explanation))
	}
	if hr := result.HeartResponse; hr != nil {
		fmt.Fprintln(out, styleHint.Render(fmt.Sprintf("  ♥ %d hearts left", hr.HeartsRemaining)))
	}
}

func renderSummary(out io.Writer, s *session.Summary) {
	var b strings.Builder

	title := "Session complete!"
	switch {
	case s.EndReason == session.EndReasonExhausted:
		title = "Out of hearts — session over."
	case s.EndReason == session.EndReasonQuit:
		title = "Session ended."
	}

	fmt.Fprintf(&b, "%s\n\n", styleTitle.Render(title))
	fmt.Fprintf(&b, "Challenges  %d/%d\n", s.Completed, s.ChallengesTotal)
	fmt.Fprintf(&b, "Correct     %d (%.0f%%)\n", s.CorrectAnswers, s.Accuracy()*100)
	if !s.StudyMode {
		fmt.Fprintf(&b, "XP earned   %s\n", styleXP.Render(strconv.Itoa(s.XPTotal)))
	}
	fmt.Fprintf(&b, "Duration    %s", s.Duration.Round(time.Second))

	fmt.Fprintln(out, styleSummary.Render(b.String()))
}

// UnwrapContentError reports whether err is a content fetch failure, the
// kind shown to the user as a plain message rather than a stack trace.
func UnwrapContentError(err error) (*content.ErrContentUnavailable, bool) {
	var unavailable *content.ErrContentUnavailable
	if errors.As(err, &unavailable) {
		return unavailable, true
	}
	return nil, false
}

// DefaultFetchParams is the out-of-the-box session shape.
func DefaultFetchParams() content.FetchParams {
	return content.FetchParams{
		Language: "es",
		Level:    "A2",
		Type:     challenge.TypeMicroQuiz,
		Count:    5,
		Source:   challenge.SourceReference,
	}
}
