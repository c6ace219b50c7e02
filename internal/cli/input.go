package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/skillprompt/internal/domain"
	"github.com/spf13/cobra"
)

// requestText joins positional args, or reads stdin when there are none and
// stdin is not a terminal.
func requestText(cmd *cobra.Command, app *App, args []string) (string, error) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" && !app.interactive() {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading request from stdin: %w", err)
		}
		text = strings.TrimSpace(string(data))
	}
	if text == "" {
		return "", fmt.Errorf("request text is required")
	}
	return text, nil
}

// jsonArg resolves a flag value that holds JSON inline, "@path" for a file,
// or "-" for stdin.
func jsonArg(cmd *cobra.Command, value string) (string, error) {
	switch {
	case value == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	case strings.HasPrefix(value, "@"):
		data, err := os.ReadFile(value[1:])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", value[1:], err)
		}
		return string(data), nil
	default:
		return value, nil
	}
}

func parseElementsFlag(cmd *cobra.Command, value string) ([]domain.SelectedElement, error) {
	raw, err := jsonArg(cmd, value)
	if err != nil {
		return nil, err
	}
	elements, err := domain.ParseSelectedElements(raw)
	if err != nil {
		return nil, fmt.Errorf("JSON parse error: %w", err)
	}
	return elements, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := domain.MarshalPretty(v)
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
