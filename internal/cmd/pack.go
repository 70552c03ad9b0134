package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/guttosm/pickship/config"
	"github.com/guttosm/pickship/internal/domain/model"
	"github.com/guttosm/pickship/internal/format"
	"github.com/guttosm/pickship/internal/logger"
)

func (f CommandFactory) initLogger(cfg config.Config) {
	logger.InitWithWriter(f.Stderr, cfg.Log.Level, cfg.Log.Pretty)
}

// runPack reads both documents, packs the order and writes the report.
// The report is rendered in memory first so a failure never leaves partial output.
func (f CommandFactory) runPack(cfg config.Config, output, inventoryPath, orderPath string) error {
	log := logger.Logger()
	capacity := cfg.Packing.Capacity
	log.Info().Float64("capacity", capacity).Msg("Box capacity")

	log.Info().Str("file", inventoryPath).Msg("Parsing inventory")
	inv, err := readInventoryFile(inventoryPath)
	if err != nil {
		return err
	}
	log.Info().Int("items", len(inv)).Msg("Inventory parsed")

	log.Info().Str("file", orderPath).Msg("Parsing order")
	order, err := readOrderFile(orderPath)
	if err != nil {
		return err
	}
	log.Info().
		Int("order_number", order.Number).
		Str("customer_code", order.CustomerCode).
		Int("line_items", len(order.LineItems)).
		Msg("Order parsed")

	log.Info().Msg("Making manifest")
	manifest, err := f.NewPacker(cfg).Pack(order, inv, capacity)
	if err != nil {
		return fmt.Errorf("packing order %d: %w", order.Number, err)
	}

	var buf bytes.Buffer
	if err := format.WriteManifest(&buf, manifest); err != nil {
		return fmt.Errorf("rendering manifest: %w", err)
	}

	if output == "" {
		log.Info().Int("boxes", manifest.BoxCount()).Msg("Writing manifest to stdout")
		_, err = f.Stdout.Write(buf.Bytes())
		return err
	}

	log.Info().Int("boxes", manifest.BoxCount()).Str("file", output).Msg("Writing manifest")
	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

func readInventoryFile(path string) (model.Inventory, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening inventory: %w", err)
	}
	defer file.Close()

	inv, err := format.ReadInventory(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return inv, nil
}

func readOrderFile(path string) (model.Order, error) {
	file, err := os.Open(path)
	if err != nil {
		return model.Order{}, fmt.Errorf("opening order: %w", err)
	}
	defer file.Close()

	order, err := format.ReadOrder(file)
	if err != nil {
		return model.Order{}, fmt.Errorf("%s: %w", path, err)
	}
	return order, nil
}
