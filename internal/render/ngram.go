package render

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"letterpress/internal/artifacts"
	"letterpress/internal/services"
)

type bigramRecord struct {
	text  string
	count int64
}

// writeTrainNgrams composes the n-gram text the font-property pass renders.
// It keeps the highest-count bigrams until their cumulative count exceeds
// 99% of the total, written space-separated in descending count order.
func (p *Phase) writeTrainNgrams(ctx context.Context) error {
	freqsPath := p.bigramFreqsPath()
	if err := artifacts.Check(ctx, freqsPath); err != nil {
		return err
	}
	data, err := os.ReadFile(freqsPath)
	if err != nil {
		return services.Wrap(services.ErrUnreadableArtifact, PhaseName, "ngrams",
			fmt.Sprintf("'%s' io error", freqsPath), err)
	}
	records, err := parseBigramRecords(data)
	if err != nil {
		return services.Wrap(services.ErrUnreadableArtifact, PhaseName, "ngrams",
			fmt.Sprintf("'%s' has malformed bigram counts", freqsPath), err)
	}

	var out strings.Builder
	for _, rec := range selectTopBigrams(records, 0.99) {
		out.WriteString(rec.text)
		out.WriteByte(' ')
	}
	if err := os.WriteFile(p.trainNgramsPath(), []byte(out.String()), 0o644); err != nil {
		return fmt.Errorf("write train ngrams: %w", err)
	}
	return artifacts.Check(ctx, p.trainNgramsPath())
}

func parseBigramRecords(data []byte) ([]bigramRecord, error) {
	var records []bigramRecord
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		count, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bigram count %q: %w", fields[1], err)
		}
		records = append(records, bigramRecord{text: fields[0], count: count})
	}
	return records, nil
}

// selectTopBigrams returns records in descending count order, cut off once
// the cumulative count of the already-selected records exceeds fraction of
// the total. The record that crosses the threshold is still included. Ties
// keep their input order.
func selectTopBigrams(records []bigramRecord, fraction float64) []bigramRecord {
	var total int64
	for _, rec := range records {
		total += rec.count
	}
	threshold := fraction * float64(total)

	sorted := append([]bigramRecord(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].count > sorted[j].count })

	var cumulative int64
	selected := make([]bigramRecord, 0, len(sorted))
	for _, rec := range sorted {
		if float64(cumulative) > threshold {
			break
		}
		selected = append(selected, rec)
		cumulative += rec.count
	}
	return selected
}
