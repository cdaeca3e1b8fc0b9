// Package inline selects episodes without a TUI and prints the resulting download request.
package inline

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/anisan-cli/eprange/constant"
	"github.com/anisan-cli/eprange/gate"
	"github.com/anisan-cli/eprange/log"
	"github.com/anisan-cli/eprange/ranges"
	"github.com/anisan-cli/eprange/selection"
	"github.com/samber/mo"
)

var (
	ErrVetoed        = errors.New("submission vetoed")
	ErrUnknownSeason = errors.New("unknown season")
)

func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	request, err := Select(options)
	if err != nil {
		return err
	}

	return Write(options.Out, request, options.Json)
}

// Select applies the picker to the chosen season and passes the result through the gate.
func Select(options *Options) (*Request, error) {
	if options.Series == nil {
		return nil, errors.New("no catalog given")
	}

	sync := options.Series.Synchronizer(nil)

	if season, ok := options.Season.Get(); ok {
		if _, ok := options.Series.Season(int(season)); !ok {
			return nil, fmt.Errorf("season %d: %w", season, ErrUnknownSeason)
		}

		if picker, ok := options.Picker.Get(); ok {
			if err := picker(sync, season); err != nil {
				return nil, err
			}
		}
	}

	downloadType := options.DownloadType
	if downloadType == "" {
		downloadType = gate.Episodes
	}

	verdict := gate.New(sync, constant.SelectAtLeastOneEpisode).Check(gate.Submission{
		Season:       options.Season,
		DownloadType: downloadType,
	})

	if !verdict.Allowed {
		return nil, fmt.Errorf("%w: %s", ErrVetoed, verdict.Alert)
	}

	return NewRequest(options.Series.Title, sync, options.Season, downloadType), nil
}

// NewRequest captures the current slot value of season.
// A full season request carries the whole-season token instead.
func NewRequest(title string, slots gate.SlotReader, season mo.Option[selection.Season], downloadType string) *Request {
	request := &Request{
		Series:       title,
		DownloadType: downloadType,
	}

	s, ok := season.Get()
	if !ok {
		return request
	}

	request.Season = int(s)
	request.Slot = selection.SlotKey(s)

	if downloadType == gate.FullSeason {
		request.Episodes = ranges.Whole
	} else if slot, ok := slots.Slot(s); ok {
		request.Episodes = slot.Value()
	}

	log.WithField("slot", request.Slot).Infof("request for %q: %s", title, request.Episodes)
	return request
}

// Write prints request as one text line or as JSON.
func Write(out io.Writer, request *Request, asJson bool) error {
	if asJson {
		return writeJson(out, request)
	}

	_, err := fmt.Fprintln(out, request.String())
	return err
}
