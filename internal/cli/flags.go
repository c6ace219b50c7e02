package cli

import (
	"github.com/alexanderramin/skillprompt/internal/domain"
	"github.com/alexanderramin/skillprompt/internal/retrieval"
	"github.com/spf13/pflag"
)

func addJSONFlag(fs *pflag.FlagSet, asJSON *bool, what string) {
	fs.BoolVar(asJSON, "json", false, "print "+what+" as JSON")
}

func addSearchFlags(fs *pflag.FlagSet, keywords *string, limit *int) {
	fs.StringVarP(keywords, "keywords", "k", "", "comma-separated keywords")
	fs.IntVarP(limit, "limit", "n", retrieval.DefaultLimit, "maximum results")
}

func addDomainHintFlag(fs *pflag.FlagSet, hint *string) {
	fs.StringVar(hint, "domain", string(domain.DomainAuto), "domain hint (portrait/art/design/product/video/auto)")
}

func addModeFlag(fs *pflag.FlagSet, mode *string) {
	fs.StringVarP(mode, "mode", "m", string(domain.ModeAuto), "composition mode (simple/auto/detailed)")
}
