/*Command line tools for exercising the message pipeline without the HTTP server*/
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// context holds global options
type context struct {
	Timezone string `help:"IANA timezone used for today." default:"Asia/Jakarta"`
}

var cli struct {
	Ctx context `embed:""`

	Parse  parseCmd  `cmd:"" help:"Run a message through the pipeline against an in-memory store."`
	Range  rangeCmd  `cmd:"" help:"Resolve a date phrase to a calendar range."`
	Amount amountCmd `cmd:"" help:"Normalize an amount token such as 25rb or 1.5jt."`
	Token  tokenCmd  `cmd:"" help:"Sign an access token for local testing."`
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		panic(err)
	}

	ctx := kong.Parse(&cli)
	err := ctx.Run(&cli.Ctx)
	ctx.FatalIfErrorf(err)
}
