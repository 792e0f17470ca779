package sheet

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dnderr "github.com/KirkDiggler/dnd-sheets/internal/errors"
)

func saveData(options ...*discordgo.ApplicationCommandInteractionDataOption) discordgo.ApplicationCommandInteractionData {
	return discordgo.ApplicationCommandInteractionData{
		Name: "dnd",
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			{
				Name: "sheet",
				Type: discordgo.ApplicationCommandOptionSubCommandGroup,
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{
						Name:    "save",
						Type:    discordgo.ApplicationCommandOptionSubCommand,
						Options: options,
					},
				},
			},
		},
	}
}

func TestReadDescription_JSONOption(t *testing.T) {
	data := saveData(&discordgo.ApplicationCommandInteractionDataOption{
		Name:  OptionJSON,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: `{"name": "Vex", "classes": ["Rogue"], "levels": [4]}`,
	})

	desc, err := ReadDescription(context.Background(), data, nil)
	require.NoError(t, err)
	assert.Equal(t, "Vex", desc["name"])
	assert.Equal(t, []any{float64(4)}, desc["levels"])
}

func TestReadDescription_Attachment(t *testing.T) {
	data := saveData(&discordgo.ApplicationCommandInteractionDataOption{
		Name:  OptionFile,
		Type:  discordgo.ApplicationCommandOptionAttachment,
		Value: "att-1",
	})
	data.Resolved = &discordgo.ApplicationCommandInteractionDataResolved{
		Attachments: map[string]*discordgo.MessageAttachment{
			"att-1": {ID: "att-1", Filename: "vex.json", URL: "https://cdn.example/vex.json", Size: 40},
		},
	}

	var fetched string
	fetch := func(_ context.Context, url string) ([]byte, error) {
		fetched = url
		return []byte(`{"name": "Vex", "classes": "Rogue"}`), nil
	}

	desc, err := ReadDescription(context.Background(), data, fetch)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/vex.json", fetched)
	assert.Equal(t, "Rogue", desc["classes"])
}

func TestReadDescription_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := ReadDescription(ctx, saveData(), nil)
	assert.True(t, dnderr.IsInvalidArgument(err), "no input")

	missing := saveData(&discordgo.ApplicationCommandInteractionDataOption{
		Name: OptionFile, Type: discordgo.ApplicationCommandOptionAttachment, Value: "nope",
	})
	_, err = ReadDescription(ctx, missing, nil)
	assert.True(t, dnderr.IsNotFound(err))

	huge := saveData(&discordgo.ApplicationCommandInteractionDataOption{
		Name: OptionFile, Type: discordgo.ApplicationCommandOptionAttachment, Value: "big",
	})
	huge.Resolved = &discordgo.ApplicationCommandInteractionDataResolved{
		Attachments: map[string]*discordgo.MessageAttachment{
			"big": {Filename: "big.json", Size: maxDescriptionBytes + 1},
		},
	}
	_, err = ReadDescription(ctx, huge, func(context.Context, string) ([]byte, error) {
		t.Fatal("oversized attachments are not downloaded")
		return nil, nil
	})
	assert.True(t, dnderr.IsInvalidArgument(err))

	broken := saveData(&discordgo.ApplicationCommandInteractionDataOption{
		Name: OptionJSON, Type: discordgo.ApplicationCommandOptionString, Value: `{"classes": `,
	})
	_, err = ReadDescription(ctx, broken, nil)
	assert.True(t, dnderr.IsInvalidArgument(err))

	failing := saveData(&discordgo.ApplicationCommandInteractionDataOption{
		Name: OptionFile, Type: discordgo.ApplicationCommandOptionAttachment, Value: "att",
	})
	failing.Resolved = &discordgo.ApplicationCommandInteractionDataResolved{
		Attachments: map[string]*discordgo.MessageAttachment{"att": {URL: "x"}},
	}
	_, err = ReadDescription(ctx, failing, func(context.Context, string) ([]byte, error) {
		return nil, errors.New("cdn down")
	})
	assert.ErrorContains(t, err, "cdn down")
}

func TestHTTPFetcher(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.json":
			_, _ = w.Write([]byte(`{"classes": "Bard"}`))
		case "/big.json":
			_, _ = w.Write([]byte(strings.Repeat(" ", maxDescriptionBytes+10)))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	fetch := HTTPFetcher(server.Client())
	ctx := context.Background()

	body, err := fetch(ctx, server.URL+"/ok.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"classes": "Bard"}`, string(body))

	_, err = fetch(ctx, server.URL+"/big.json")
	assert.True(t, dnderr.IsInvalidArgument(err))

	_, err = fetch(ctx, server.URL+"/missing.json")
	assert.Error(t, err)
}

func TestUserID(t *testing.T) {
	guild := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Member: &discordgo.Member{User: &discordgo.User{ID: "member"}},
	}}
	assert.Equal(t, "member", userID(guild))

	dm := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{User: &discordgo.User{ID: "dm"}}}
	assert.Equal(t, "dm", userID(dm))
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "Sheet not found", userMessage(dnderr.NotFoundf("sheet x")))
	assert.Contains(t, userMessage(dnderr.UnknownClassf("unknown class Gunslinger")), "Gunslinger")
	assert.Equal(t, "Something went wrong, try again later", userMessage(errors.New("redis: connection refused")))
}
