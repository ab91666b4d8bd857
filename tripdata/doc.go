/*
Package tripdata loads bike-share trip files into an in-memory table and
narrows them by month and weekday.

The loader is given an explicit city to file mapping and reads a whole CSV
file into a gota DataFrame before any statistics are computed:

	loader := tripdata.NewLoader(cfg.Data.Dir, cfg.CityFiles())
	table, err := loader.Load(filters.Selection{City: "chicago", Month: "january", Day: filters.All})
	if err != nil {
	    log.Fatal(err)
	}

# Columns

Source columns are kept as they appear in the files:

  - Start Time, End Time (string, "2006-01-02 15:04:05")
  - Trip Duration (float, seconds)
  - Start Station, End Station, User Type (string)
  - Gender (string) and Birth Year (float), only in some cities

Three columns are derived from Start Time right after load: month (1-12),
day_of_week (English weekday name) and hour (0-23).

# Immutability

Every Table operation returns a new Table. Filtering only changes which rows
are present; it never rewrites a field.
*/
package tripdata
