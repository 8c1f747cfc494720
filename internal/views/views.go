// Package views turns cities state into the list screens: a spinner while a
// request is in flight, a message when there is nothing to show, otherwise the
// list items.
package views

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"worldwise/internal/cities"
	"worldwise/internal/countries"
	"worldwise/internal/types"
)

// EmptyMessage is shown by both lists when no city has been added yet.
const EmptyMessage = "Add your first city by clicking on a city on the map"

const spinnerText = "Loading..."

// CountryList is the visited-countries screen.
type CountryList struct {
	Loading   bool                   `json:"loading" doc:"Render a spinner"`
	Message   string                 `json:"message,omitempty" doc:"Render a message instead of the list"`
	Countries []types.CountrySummary `json:"countries" doc:"One item per visited country"`
}

// NewCountryList builds the country screen from a state snapshot.
func NewCountryList(state cities.State) CountryList {
	if state.IsLoading {
		return CountryList{Loading: true, Countries: []types.CountrySummary{}}
	}
	if len(state.Cities) == 0 {
		return CountryList{Message: EmptyMessage, Countries: []types.CountrySummary{}}
	}
	return CountryList{Countries: countries.Summarize(state.Cities)}
}

// Render writes the screen as text.
func (v CountryList) Render(w io.Writer) error {
	switch {
	case v.Loading:
		return Spinner(w)
	case v.Message != "":
		return Message(w, v.Message)
	}

	for _, c := range v.Countries {
		if err := CountryItem(w, c); err != nil {
			return err
		}
	}
	return nil
}

// CityList is the visited-cities screen.
type CityList struct {
	Loading bool         `json:"loading" doc:"Render a spinner"`
	Message string       `json:"message,omitempty" doc:"Render a message instead of the list"`
	Cities  []types.City `json:"cities" doc:"One item per visited city"`
	Current types.CityID `json:"current,omitempty" doc:"Id of the highlighted city"`
}

// NewCityList builds the city screen from a state snapshot.
func NewCityList(state cities.State) CityList {
	if state.IsLoading {
		return CityList{Loading: true, Cities: []types.City{}}
	}
	if len(state.Cities) == 0 {
		return CityList{Message: EmptyMessage, Cities: []types.City{}}
	}
	return CityList{Cities: state.Cities, Current: state.CurrentCity.ID}
}

// Render writes the screen as a table, marking the current city.
func (v CityList) Render(w io.Writer) error {
	switch {
	case v.Loading:
		return Spinner(w)
	case v.Message != "":
		return Message(w, v.Message)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, c := range v.Cities {
		if err := CityItem(tw, c, v.Current != "" && c.ID == v.Current); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// CityItem writes one tab-separated city row. Current rows are starred.
func CityItem(w io.Writer, c types.City, current bool) error {
	marker := " "
	if current {
		marker = "*"
	}
	_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t(%s)\n", marker, c.Emoji, c.CityName, FormatDate(c.Date), c.ID)
	return err
}

// CityDetail renders one city with its local time zone.
func CityDetail(w io.Writer, city types.City, timezone string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	rows := [][2]string{
		{"City", strings.TrimSpace(city.Emoji + " " + city.CityName)},
		{"Country", city.Country},
		{"Visited", FormatDate(city.Date)},
		{"Position", fmt.Sprintf("%.4f, %.4f", city.Position.Lat, city.Position.Lng)},
	}
	if timezone != "" {
		rows = append(rows, [2]string{"Time zone", timezone})
	}
	if city.Notes != "" {
		rows = append(rows, [2]string{"Notes", city.Notes})
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func Spinner(w io.Writer) error {
	_, err := fmt.Fprintln(w, spinnerText)
	return err
}

func Message(w io.Writer, message string) error {
	_, err := fmt.Fprintf(w, "👋 %s\n", message)
	return err
}

func CountryItem(w io.Writer, c types.CountrySummary) error {
	_, err := fmt.Fprintf(w, "%s %s\n", c.Emoji, c.Country)
	return err
}

// FormatDate prints a visit date like "October 31, 2027".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("January 2, 2006")
}
