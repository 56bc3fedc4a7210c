package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"message-info/adx2"
	"message-info/msginfo"
	"message-info/msginfo/mhash"
	"message-info/pcolor"
)

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

func RunHash(w io.Writer, texts []string) error {
	for _, text := range texts {
		key := mhash.HashString(text)
		if _, err := fmt.Fprintf(w, "%s\t%d\t%s\n", msginfo.FormatKey(key), key, text); err != nil {
			return errors.Wrap(err, "RunHash error")
		}
	}
	return nil
}

func ReadMessageInfo(path string) (*msginfo.MessageInfo, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, `ReadMessageInfo error reading "%s"`, path)
	}
	info := msginfo.MessageInfo{}
	if err := json.Unmarshal(bs, &info); err != nil {
		return nil, errors.Wrapf(err, `ReadMessageInfo error decoding "%s"`, path)
	}
	return &info, nil
}

// RunMerge folds the files in argument order and writes the result to `to`.
// Explicit force is needed to make sure an existing file is not overwritten by accident.
func RunMerge(logger *slog.Logger, from []string, to string, force bool, fill bool) error {
	if len(from) == 0 {
		return errors.New("RunMerge error: no source files")
	}
	if missing, found := lo.Find(from, func(path string) bool { return !CheckExistence(path) }); found {
		return errors.Errorf(`RunMerge error: source file "%s" does not exist`, missing)
	}
	if CheckExistence(to) && !force {
		return errors.Errorf(`RunMerge error: destination "%s" exists, use --force to overwrite`, to)
	}

	infos := make([]*msginfo.MessageInfo, 0, len(from))
	for _, path := range from {
		info, err := ReadMessageInfo(path)
		if err != nil {
			return err
		}
		logger.Debug("read message info", "path", path, "language", info.Language, "entries", info.Len())
		infos = append(infos, info)
	}

	merged, err := msginfo.Fold(infos[0], infos[1:]...)
	if err != nil {
		return errors.Wrap(err, "RunMerge error")
	}
	if fill {
		filled := merged.FillStringIDs()
		logger.Debug("restored string ids", "count", filled)
	}

	bs, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return errors.Wrap(err, "RunMerge error encoding result")
	}
	if err := os.WriteFile(to, bs, 0644); err != nil {
		return errors.Wrapf(err, `RunMerge error writing to "%s"`, to)
	}
	logger.Info("merged message info", "files", len(from), "language", merged.Language, "entries", merged.Len(), "to", to)
	return nil
}

func RunColor(w io.Writer, value string, withHash bool) error {
	rgb, ok := pcolor.FromHexStr(value)
	if !ok {
		return errors.Errorf(`RunColor error: "%s" is not a hex color`, value)
	}
	_, err := fmt.Fprintf(w, "%s\t%d %d %d\n", rgb.ToHexStr(withHash), rgb.Red, rgb.Green, rgb.Blue)
	return err
}

// RunCue prints the name of a numeric query and the index of any other query.
func RunCue(w io.Writer, query string) error {
	var output string
	if index, err := strconv.ParseUint(query, 10, 8); err == nil {
		output = adx2.FileName(uint8(index))
	} else {
		output = strconv.Itoa(int(adx2.FileIndex(query)))
	}
	_, err := fmt.Fprintln(w, output)
	return err
}
