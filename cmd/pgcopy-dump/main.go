// Command pgcopy-dump reads a PostgreSQL COPY BINARY file, decodes it, and
// prints each decoded column's name, type and length (not its values). It exists to exercise the core decoder end to end;
// the transport (here, a plain file) and the final handoff to a host
// environment are both outside the core's scope.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/oarkflow/pgcopy"
	"github.com/oarkflow/pgcopy/pgerr"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: pgcopy-dump <file.bin> <type,type,...>")
		os.Exit(2)
	}
	path := os.Args[1]
	typeNames := strings.Split(os.Args[2], ",")

	buf, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("read input file")
	}

	arrays, schema, err := pgcopy.Decode(buf, typeNames, pgcopy.WithLogger(log.Logger))
	if err != nil {
		var pe *pgerr.Error
		if errors.As(err, &pe) {
			log.Fatal().Str("kind", pe.Kind.String()).Str("detail", pe.Detail).
				Int("column", pe.Column).Msg("decode failed")
		}
		log.Fatal().Err(err).Msg("decode failed")
	}

	log.Info().Int("columns", schema.NumFields()).Msg("decoded")
	for i, field := range schema.Fields() {
		fmt.Printf("%s (%s): len=%d\n", field.Name, field.Type, arrays[i].Len())
	}
}
