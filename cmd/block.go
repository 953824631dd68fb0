package cmd

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/w3net/internal/formatters"
	"github.com/Mohsinsiddi/w3net/internal/ui"
)

var blockFull bool

var blockCmd = &cobra.Command{
	Use:   "block [number|tag]",
	Short: "Fetch a block by number or tag",
	Long: `Fetch and display a block. The argument accepts a decimal number,
a 0x-prefixed hex number, or one of the tags "latest", "pending",
"earliest"/"genesis". Defaults to latest.

Examples:
  w3net block
  w3net block 19000000
  w3net block genesis
  w3net block latest --full`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var number any
		if len(args) == 1 {
			number = args[0]
		}

		ctx, cancel := requestContext()
		defer cancel()

		net, endpoint, err := newNet(ctx)
		if err != nil {
			return err
		}

		spin := ui.NewSpinner(fmt.Sprintf("Fetching block from %s…", endpoint))
		spin.Start()
		block, err := net.BlockByNumber(ctx, number, blockFull).Wait(ctx)
		spin.Stop()
		if err != nil {
			return fmt.Errorf("fetching block: %w", err)
		}

		fmt.Println(renderBlock(block, endpoint))

		if blockFull && len(block.Transactions) > 0 {
			t := ui.NewTable([]ui.Column{
				{Title: "#", Width: 4},
				{Title: "Hash", Width: 16},
				{Title: "From", Width: 14},
				{Title: "To", Width: 14},
				{Title: "Value (wei)", Width: 24},
			})
			for _, tx := range block.Transactions {
				to := tx.To
				if to == "" {
					to = "(create)"
				}
				value := "0"
				if tx.Value != nil {
					value = tx.Value.String()
				}
				t.AddRow(ui.Row{
					fmt.Sprintf("%d", tx.TransactionIndex),
					ui.TruncateHash(tx.Hash.Hex()),
					ui.TruncateHash(tx.From),
					ui.TruncateHash(to),
					value,
				})
			}
			fmt.Println(t.Render())
		}
		return nil
	},
}

func renderBlock(block *formatters.Block, endpoint string) string {
	number := "pending"
	if block.Number != nil {
		number = "#" + commaSep(block.Number.Uint64())
	}

	hash := "—"
	if block.Hash != (common.Hash{}) {
		hash = block.Hash.Hex()
	}

	ts := "—"
	if block.Timestamp > 0 {
		ts = time.Unix(int64(block.Timestamp), 0).UTC().Format("2006-01-02 15:04:05 UTC")
	}

	miner := block.Miner
	if miner == "" {
		miner = "—"
	}

	gas := fmt.Sprintf("%s / %s", commaSep(block.GasUsed), commaSep(block.GasLimit))

	pairs := [][2]string{
		{"Block", number},
		{"Hash", hash},
		{"Parent", block.ParentHash.Hex()},
		{"Timestamp", ts},
		{"Transactions", fmt.Sprintf("%d", block.TxCount())},
		{"Gas Used/Limit", gas},
		{"Miner", ui.TruncateHash(miner)},
		{"Size", fmt.Sprintf("%d bytes", block.Size)},
	}
	return ui.KeyValueBlock("🧱 Block · "+endpoint, pairs)
}

// commaSep formats a uint64 with comma thousands separators.
func commaSep(n uint64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	result := make([]byte, 0, len(s)+len(s)/3)
	for i, ch := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(ch))
	}
	return string(result)
}

func init() {
	blockCmd.Flags().BoolVar(&blockFull, "full", false, "include full transaction objects")
}
