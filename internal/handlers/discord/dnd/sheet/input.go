package sheet

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/dnd-sheets/internal/domain/character"
	dnderr "github.com/KirkDiggler/dnd-sheets/internal/errors"
	"github.com/KirkDiggler/dnd-sheets/internal/handlers/discord/utils"
)

const (
	OptionJSON = "json"
	OptionFile = "file"
	OptionID   = "id"
	OptionPage = "page"

	// descriptions larger than this are refused before parsing
	maxDescriptionBytes = 256 << 10
)

// Fetcher downloads an attachment body
type Fetcher func(ctx context.Context, url string) ([]byte, error)

// HTTPFetcher downloads with client, refusing bodies over the description limit
func HTTPFetcher(client *http.Client) Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	return func(ctx context.Context, url string) ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, dnderr.Wrap(err, "failed to build attachment request")
		}

		resp, err := client.Do(req)
		if err != nil {
			return nil, dnderr.Wrap(err, "failed to download attachment")
		}
		defer func() {
			_ = resp.Body.Close()
		}()

		if resp.StatusCode != http.StatusOK {
			return nil, dnderr.Internalf("attachment download returned %s", resp.Status)
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxDescriptionBytes+1))
		if err != nil {
			return nil, dnderr.Wrap(err, "failed to read attachment")
		}
		if len(body) > maxDescriptionBytes {
			return nil, dnderr.InvalidArgumentf("attachment is larger than %d bytes", maxDescriptionBytes)
		}

		return body, nil
	}
}

// ReadDescription takes the description from the json option, or downloads the
// file attachment when no json was given
func ReadDescription(ctx context.Context, data discordgo.ApplicationCommandInteractionData, fetch Fetcher) (character.Description, error) {
	if opt := utils.FindOption(data, OptionJSON); opt != nil {
		raw, _ := opt.Value.(string)
		if len(raw) > maxDescriptionBytes {
			return nil, dnderr.InvalidArgumentf("description is larger than %d bytes", maxDescriptionBytes)
		}
		return character.ParseDescription([]byte(raw))
	}

	if utils.FindOption(data, OptionFile) == nil {
		return nil, dnderr.InvalidArgument("attach a JSON file or pass the json option")
	}

	attachment, ok := utils.Attachment(data, OptionFile)
	if !ok {
		return nil, dnderr.NotFoundf("attachment %s not found", utils.StringOption(data, OptionFile))
	}
	if attachment.Size > maxDescriptionBytes {
		return nil, dnderr.InvalidArgumentf("%s is larger than %d bytes", attachment.Filename, maxDescriptionBytes)
	}
	if fetch == nil {
		return nil, dnderr.Internalf("no fetcher configured for attachments")
	}

	body, err := fetch(ctx, attachment.URL)
	if err != nil {
		return nil, err
	}

	desc, err := character.ParseDescription(body)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to parse %s", attachment.Filename)
	}

	return desc, nil
}

// userID works for guild interactions and direct messages
func userID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func respondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("❌ %s", message),
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func editWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) error {
	content := fmt.Sprintf("❌ %s", message)
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	})
	return err
}

// userMessage turns a service error into text safe to show in Discord
func userMessage(err error) string {
	switch {
	case dnderr.IsNotFound(err):
		return "Sheet not found"
	case dnderr.IsStructural(err), dnderr.IsInvalidArgument(err):
		return err.Error()
	default:
		return "Something went wrong, try again later"
	}
}
