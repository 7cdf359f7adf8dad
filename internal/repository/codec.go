package repository

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const snapshotLines = 4

// EncodeSnapshot - writes the four-line save format:
// board cells, turn, active participant id, comma-separated move order.
func EncodeSnapshot(snapshot entity.Snapshot) []byte {
	var sb strings.Builder

	for _, cell := range snapshot.Board {
		sb.WriteByte(byte(cell))
	}
	sb.WriteByte('\n')

	sb.WriteString(strconv.Itoa(snapshot.Turn))
	sb.WriteByte('\n')

	sb.WriteString(strconv.Itoa(snapshot.Active))
	sb.WriteByte('\n')

	order := make([]string, len(snapshot.MoveOrder))
	for i, turn := range snapshot.MoveOrder {
		order[i] = strconv.Itoa(turn)
	}
	sb.WriteString(strings.Join(order, ","))
	sb.WriteByte('\n')

	return []byte(sb.String())
}

// DecodeSnapshot - parses the four-line save format. Every failure wraps apperror.ErrMalformedSave.
func DecodeSnapshot(data []byte) (entity.Snapshot, error) {
	lines := make([]string, 0, snapshotLines)

	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() && len(lines) < snapshotLines {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}

	if err := scanner.Err(); err != nil {
		return entity.Snapshot{}, fmt.Errorf("%w: %w", apperror.ErrMalformedSave, err)
	}

	if len(lines) < snapshotLines {
		return entity.Snapshot{}, fmt.Errorf("%w: expected %d lines, got %d", apperror.ErrMalformedSave, snapshotLines, len(lines))
	}

	var snapshot entity.Snapshot

	board := lines[0]
	if len(board) != entity.BoardSize {
		return entity.Snapshot{}, fmt.Errorf("%w: board has %d cells", apperror.ErrMalformedSave, len(board))
	}

	for i := range snapshot.Board {
		mark := entity.Mark(board[i])
		if !mark.IsValid() {
			return entity.Snapshot{}, fmt.Errorf("%w: unknown mark %q at cell %d", apperror.ErrMalformedSave, mark, i+1)
		}
		snapshot.Board[i] = mark
	}

	turn, err := strconv.Atoi(strings.TrimSpace(lines[1]))
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("%w: turn: %w", apperror.ErrMalformedSave, err)
	}
	snapshot.Turn = turn

	active, err := strconv.Atoi(strings.TrimSpace(lines[2]))
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("%w: active participant: %w", apperror.ErrMalformedSave, err)
	}
	if !entity.IsParticipantID(active) {
		return entity.Snapshot{}, fmt.Errorf("%w: active participant %d", apperror.ErrMalformedSave, active)
	}
	snapshot.Active = active

	order := strings.Split(strings.TrimSpace(lines[3]), ",")
	if len(order) != entity.BoardSize {
		return entity.Snapshot{}, fmt.Errorf("%w: move order has %d entries", apperror.ErrMalformedSave, len(order))
	}

	for i, field := range order {
		value, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return entity.Snapshot{}, fmt.Errorf("%w: move order at cell %d: %w", apperror.ErrMalformedSave, i+1, err)
		}
		snapshot.MoveOrder[i] = value
	}

	return snapshot, nil
}
