package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/adminconsole/internal/client/models"
)

// chatCmd sends the rest of the line, or a multi-line prompt when the line
// is empty, and prints the reply.
func (a *App) chatCmd(ctx context.Context, args []string) error {
	text := strings.Join(args, " ")
	if text == "" {
		var err error
		if text, err = GetMultiline(a.reader, "Message", a.out); err != nil {
			return err
		}
	}

	records, err := a.svc.Chat.Send(ctx, text)
	if err != nil {
		return err
	}
	for _, r := range records {
		if r.Role == models.ChatRoleAssistant {
			printRecord(r)
		}
	}
	return nil
}

func (a *App) historyCmd(ctx context.Context, _ []string) error {
	records, err := a.svc.Chat.History(ctx)
	if err != nil {
		return err
	}
	for _, r := range records {
		printRecord(r)
	}
	return nil
}

func (a *App) chatResetCmd(ctx context.Context, _ []string) error {
	welcome, err := a.svc.Chat.Reset(ctx)
	if err != nil {
		return err
	}
	printlnFn("Your chat history has been cleared")
	printRecord(welcome)
	return nil
}

func printRecord(r models.TranscriptRecord) {
	ts := ""
	if !r.Timestamp.IsZero() {
		ts = r.Timestamp.Local().Format("2006-01-02 15:04") + " "
	}
	who := "you"
	if r.Role == models.ChatRoleAssistant {
		who = "ai"
	}
	printlnFn(ts + who + ": " + r.Content)
}
