package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"listinha/internal/catalog"
	"listinha/internal/config"
	"listinha/internal/export"
	"listinha/internal/list"
	"listinha/internal/model"
	"listinha/internal/store/jsonstore"
	"listinha/internal/ui"
	"listinha/internal/voice"
)

var (
	flagUnit string
	flagOut  string
	flagYes  bool
	noColor  bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "listinha",
	Short: "Lista de compras no terminal",
	Long: `listinha é uma lista de compras local: navegue o catálogo por
categoria, adicione itens personalizados ou por voz, marque o que já foi
comprado e exporte o resumo em PDF.

Sem argumentos, abre a interface interativa de três telas.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		ui.SetColorDisabled(noColor)
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		logger, err = buildLogger(cfg)
		if err != nil {
			return fmt.Errorf("logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := openManager()
		if err != nil {
			return err
		}
		return ui.Run(mgr, newVoiceSession(), cfg.DataDir)
	},
}

// buildLogger keeps the terminal clean: debug mode logs to a file under the
// data dir, otherwise logging is a no-op.
func buildLogger(cfg config.Config) (*zap.Logger, error) {
	if !cfg.Debug {
		return zap.NewNop(), nil
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	zc.OutputPaths = []string{cfg.LogPath()}
	zc.ErrorOutputPaths = []string{cfg.LogPath()}
	return zc.Build()
}

// openManager loads the persisted list and wires persistence back in as a
// fire-and-forget change hook: a failed write is logged, never surfaced,
// and never rolls back the in-memory state.
func openManager() (*list.Manager, error) {
	store := jsonstore.New(cfg.DataDir)
	entries, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	mgr := list.NewManager(entries)
	mgr.SetOnChange(func(snapshot []model.Entry) {
		if err := store.Save(snapshot); err != nil {
			logger.Warn("persist failed", zap.Error(err))
		}
	})
	return mgr, nil
}

// newVoiceSession detects the capture collaborator once at startup. No
// configured command means a persistent "not supported" state, not a
// per-attempt error.
func newVoiceSession() *voice.Session {
	if cfg.VoiceCmd == "" {
		return voice.NewSession(nil)
	}
	return voice.NewSession(voice.ExecRecognizer{Command: cfg.VoiceCmd})
}

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "Lista os itens agrupados por categoria",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := openManager()
		if err != nil {
			ui.Fail("carregar: " + err.Error())
			return err
		}
		printList(mgr)
		return nil
	},
}

func printList(mgr *list.Manager) {
	entries := mgr.Entries()
	done := len(entries) - mgr.PendingCount()

	var lines []string
	lines = append(lines, fmt.Sprintf("%s  %s %d  %s %d  %s %s",
		ui.C("\033[1m", "Lista de Compras"),
		ui.C("\033[32m", "✔"), done,
		ui.C("\033[33m", "•"), mgr.PendingCount(),
		ui.C("\033[34m", "Total"), ui.BRLTotal(mgr),
	))
	lines = append(lines, ui.C("\033[90m", ui.ProgressBar(done, len(entries), 28)))
	lines = append(lines, "")

	if len(entries) == 0 {
		lines = append(lines, ui.C("\033[90m", "lista vazia"))
	}
	for _, g := range list.GroupedByCategory(entries) {
		lines = append(lines, ui.C("\033[34m", g.Name))
		for _, e := range g.Entries {
			box := "☐"
			if e.Purchased {
				box = ui.C("\033[32m", "☑")
			}
			line := fmt.Sprintf("%s %s (%d %s)", box, e.Name, e.Quantity, e.Unit)
			if !e.Price.IsZero() {
				line += " " + ui.C("\033[90m", export.BRL(e.LineTotal()))
			}
			lines = append(lines, line)
		}
		lines = append(lines, "")
	}
	ui.Panel(lines)
}

var addCmd = &cobra.Command{
	Use:   "add <nome...>",
	Short: "Adiciona um item à lista",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := openManager()
		if err != nil {
			ui.Fail("carregar: " + err.Error())
			return err
		}
		name := strings.TrimSpace(strings.Join(args, " "))

		unit := catalog.UnitUnidade
		icon := ""
		if it, ok := catalog.Find(name); ok {
			// catalog items keep their canonical name, unit and icon
			name, unit, icon = it.Name, it.Unit, it.Icon
		}
		if flagUnit != "" {
			u, ok := catalog.ParseUnit(flagUnit)
			if !ok {
				ui.Fail("unidade desconhecida: " + flagUnit)
				return fmt.Errorf("unknown unit %q", flagUnit)
			}
			unit = u
		}

		e, err := mgr.Add(name, unit, icon)
		if err != nil {
			ui.Fail(name + " já está na lista.")
			return err
		}
		ui.OK(e.Name + " adicionado à lista!")
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <nome...>",
	Short: "Remove um item da lista pelo nome",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := openManager()
		if err != nil {
			ui.Fail("carregar: " + err.Error())
			return err
		}
		name := strings.TrimSpace(strings.Join(args, " "))
		if !mgr.RemoveByName(name) {
			ui.Fail(name + " não está na lista.")
			return fmt.Errorf("not on the list: %s", name)
		}
		ui.OK(name + " removido da lista.")
		return nil
	},
}

var voiceCmd = &cobra.Command{
	Use:   "voice [transcrição...]",
	Short: "Adiciona itens por comando de voz",
	Long: `Interpreta um comando falado, por exemplo:

  listinha voice "adicionar arroz, feijão e ovos"

Sem argumentos, dispara uma captura pelo comando configurado em ` + config.EnvVoiceCmd + `.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := openManager()
		if err != nil {
			ui.Fail("carregar: " + err.Error())
			return err
		}

		transcript := strings.Join(args, " ")
		if transcript == "" {
			session := newVoiceSession()
			if !session.Supported() {
				ui.Fail("reconhecimento de voz não disponível (defina " + config.EnvVoiceCmd + ")")
				return voice.ErrNotSupported
			}
			transcript, err = session.Start(cmd.Context())
			if err != nil {
				ui.Fail("captura de voz: " + err.Error())
				return err
			}
		}

		parsed := voice.Interpret(transcript, mgr.Contains)
		added := mgr.AddMany(parsed.Matches)
		switch {
		case len(added) > 0:
			names := make([]string, 0, len(added))
			for _, e := range added {
				names = append(names, e.Name)
			}
			ui.OK(strings.Join(names, ", ") + " adicionado(s) à lista!")
		case parsed.HadFragments:
			ui.Fail("Nenhum item novo encontrado no comando de voz.")
		}
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exporta o resumo da compra em PDF",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := openManager()
		if err != nil {
			ui.Fail("carregar: " + err.Error())
			return err
		}

		now := time.Now()
		out := flagOut
		if out == "" {
			out = export.FileName(now)
		}

		entries := mgr.Entries()
		purchased := list.Purchased(entries)
		pending := list.Pending(entries)

		f, err := os.Create(out)
		if err != nil {
			ui.Fail("criar arquivo: " + err.Error())
			return err
		}
		defer f.Close()
		if err := export.WritePDF(f, purchased, pending, list.Total(purchased), now); err != nil {
			ui.Fail("gerar PDF: " + err.Error())
			return err
		}
		ui.OK("PDF gerado com sucesso! (" + filepath.Clean(out) + ")")
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Apaga a lista atual e recomeça",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !flagYes {
			fmt.Print("Tem certeza que deseja reiniciar? Todos os dados serão perdidos. [s/N] ")
			var answer string
			_, _ = fmt.Scanln(&answer)
			if !strings.EqualFold(answer, "s") && !strings.EqualFold(answer, "sim") {
				ui.Fail("reinício cancelado")
				return nil
			}
		}
		mgr, err := openManager()
		if err != nil {
			ui.Fail("carregar: " + err.Error())
			return err
		}
		mgr.Reset()
		ui.OK("Compra reiniciada!")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "desativa cores na saída")
	addCmd.Flags().StringVarP(&flagUnit, "unit", "u", "", "unidade (unidade, kg, litro, pacote, caixa, dúzia, pé, frasco, rolo)")
	exportCmd.Flags().StringVarP(&flagOut, "out", "o", "", "arquivo de saída (padrão: resumo-compras-<data>.pdf)")
	resetCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "não pedir confirmação")

	rootCmd.AddCommand(lsCmd, addCmd, rmCmd, voiceCmd, exportCmd, resetCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
