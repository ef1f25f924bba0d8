package memo_test

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/unkn0wn-root/roman"
	"github.com/unkn0wn-root/roman/codec"
	asynchook "github.com/unkn0wn-root/roman/hooks/async"
	"github.com/unkn0wn-root/roman/memo"
	"github.com/unkn0wn-root/roman/provider/ristretto"
	"github.com/unkn0wn-root/roman/sloghooks"
)

func Example() {
	ctx := context.Background()
	p, err := ristretto.New(ristretto.DefaultConfig())
	if err != nil {
		panic(err)
	}

	raw := sloghooks.New(slog.New(slog.NewTextHandler(os.Stderr, nil)), sloghooks.Options{
		SelfHealEvery:    10,
		ParseRejectEvery: 100,
	})
	hooks := asynchook.New(raw, 1, 1000)
	defer hooks.Close()

	conv, err := memo.New(memo.Options{
		Namespace:     "example",
		Provider:      p,
		Codec:         codec.Msgpack[roman.Numeral]{},
		Hooks:         hooks,
		CacheFailures: true,
	})
	if err != nil {
		panic(err)
	}
	defer conv.Close(ctx)

	n, _ := conv.Parse(ctx, "mcmlxxxiv")
	p.Wait()
	again, _ := conv.Parse(ctx, "MCMLXXXIV")
	s, _ := conv.Format(ctx, n, roman.Lower)
	_, err = conv.Parse(ctx, "XIIA")

	fmt.Println(n.Value(), again.Value(), s)
	fmt.Println(err)
	// Output:
	// 1984 1984 mcmlxxxiv
	// roman: invalid digit 'A' at offset 3
}
