package store

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
	"github.com/vmihailenco/msgpack/v5"
	bolt "go.etcd.io/bbolt"

	"github.com/adfharrison1/stock-tracker/pkg/domain"
)

const (
	// Magic bytes identifying a snapshot file
	snapshotMagic = "STKT"
	// Current snapshot format version
	snapshotVersion = 1
	// Flag set when the payload is stored uncompressed (lz4 refuses tiny or
	// incompressible blocks)
	snapshotFlagUncompressed = 1
)

// snapshotHeader is the fixed-size header at the front of every snapshot.
type snapshotHeader struct {
	Magic    [4]byte
	Version  uint8
	Flags    uint8
	Reserved [2]byte
}

// snapshotData is the payload: the full stock record set keyed by ticker.
type snapshotData struct {
	Stocks map[string]*domain.Stock `msgpack:"stocks"`
}

func writeSnapshotHeader(w io.Writer, flags uint8) error {
	header := snapshotHeader{
		Magic:   [4]byte{'S', 'T', 'K', 'T'},
		Version: snapshotVersion,
		Flags:   flags,
	}
	return binary.Write(w, binary.LittleEndian, header)
}

func readSnapshotHeader(r io.Reader) (*snapshotHeader, error) {
	var header snapshotHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read snapshot header: %w", err)
	}
	if string(header.Magic[:]) != snapshotMagic {
		return nil, fmt.Errorf("invalid snapshot format: expected %s, got %s", snapshotMagic, string(header.Magic[:]))
	}
	if header.Version != snapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version: %d", header.Version)
	}
	return &header, nil
}

// ExportTo writes an lz4-compressed msgpack snapshot of the full record set.
func (s *Store) ExportTo(w io.Writer) error {
	stocks, err := s.FetchAll()
	if err != nil {
		return err
	}

	data := snapshotData{Stocks: make(map[string]*domain.Stock, len(stocks))}
	for _, stock := range stocks {
		data.Stocks[stock.Ticker] = stock
	}

	msgpackData, err := msgpack.Marshal(&data)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	payload := make([]byte, lz4.CompressBlockBound(len(msgpackData)))
	var hashTable [1 << 16]int
	n, err := lz4.CompressBlock(msgpackData, payload, hashTable[:])
	if err != nil {
		return fmt.Errorf("failed to compress snapshot: %w", err)
	}

	var flags uint8
	if n == 0 {
		// lz4 signals an incompressible block with n == 0
		flags = snapshotFlagUncompressed
		payload = msgpackData
	} else {
		payload = payload[:n]
	}

	if err := writeSnapshotHeader(w, flags); err != nil {
		return fmt.Errorf("failed to write snapshot header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(msgpackData))); err != nil {
		return fmt.Errorf("failed to write snapshot length: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("failed to write snapshot data: %w", err)
	}
	return nil
}

// ImportFrom replaces matching records with the contents of a snapshot and
// returns the number of records written. The search index is not rebuilt here;
// the caller issues one Reindex after the import, same as any other batch
// write.
func (s *Store) ImportFrom(r io.Reader) (int, error) {
	header, err := readSnapshotHeader(r)
	if err != nil {
		return 0, err
	}

	var uncompressedLen uint32
	if err := binary.Read(r, binary.LittleEndian, &uncompressedLen); err != nil {
		return 0, fmt.Errorf("failed to read snapshot length: %w", err)
	}

	payload, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("failed to read snapshot data: %w", err)
	}

	decompressedData := payload
	if header.Flags&snapshotFlagUncompressed == 0 {
		decompressedData = make([]byte, uncompressedLen)
		n, err := lz4.UncompressBlock(payload, decompressedData)
		if err != nil {
			return 0, fmt.Errorf("failed to decompress snapshot: %w", err)
		}
		decompressedData = decompressedData[:n]
	}

	var data snapshotData
	if err := msgpack.Unmarshal(decompressedData, &data); err != nil {
		return 0, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	for ticker, stock := range data.Stocks {
		if stock.Ticker == "" {
			stock.Ticker = ticker
		}
		if err := domain.ValidateStock(stock); err != nil {
			return 0, err
		}
	}

	count := 0
	err = s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(stocksBucket))
		for _, stock := range data.Stocks {
			encoded, err := msgpack.Marshal(stock)
			if err != nil {
				return fmt.Errorf("failed to encode stock %s: %w", stock.Ticker, err)
			}
			if err := bucket.Put([]byte(stock.Ticker), encoded); err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
