package menu

import (
	"context"
	"fmt"
)

func Execute(ctx context.Context, key string, d *Deps) error {
	switch key {
	case "main":
		return actionMain(ctx, d)
	case "cards":
		return actionCards(ctx, d)
	case "transfer":
		return actionTransfer(ctx, d)
	case "history":
		return actionHistory(ctx, d)
	case "analytics":
		return actionAnalytics(ctx, d)
	case "profile":
		return actionProfile(ctx, d)
	case "wallet":
		return actionWallet(ctx, d)
	case "logout":
		return actionLogout(ctx, d)

	case "list_cards":
		return actionListCards(ctx, d)
	case "add_card":
		return actionAddCard(ctx, d)
	case "edit_card":
		return actionEditCard(ctx, d)
	case "toggle_block":
		return actionToggleBlock(ctx, d)
	case "delete_card":
		return actionDeleteCard(ctx, d)
	case "list_txs":
		return actionListTxs(ctx, d)
	case "add_tx":
		return actionAddTx(ctx, d)
	case "edit_tx":
		return actionEditTx(ctx, d)
	case "delete_tx":
		return actionDeleteTx(ctx, d)
	case "summary":
		return actionSummary(ctx, d)
	case "export_txs":
		return actionExportTxs(ctx, d)
	case "import_txs":
		return actionImportTxs(ctx, d)
	case "reset":
		return actionReset(ctx, d)

	case "exit":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
}
