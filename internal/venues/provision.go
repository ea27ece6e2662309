package venues

import (
	"fmt"
	"log"
	"strconv"

	shp "github.com/jonas-p/go-shp"

	"github.com/ngmaloney/regatta-terminal/internal/database"
)

// Expected DBF layout for a venue shapefile:
//
//	Field 0: NAME    venue name
//	Field 1: NEAP    max neap current, knots
//	Field 2: SPRING  max spring current, knots
//
// The profile center is the centroid of the polygon bounding box.
const (
	fieldName   = 0
	fieldNeap   = 1
	fieldSpring = 2
)

// ImportShapefile loads venue current profiles from a racing-area
// shapefile into the shared database, extending the built-in catalog.
// Records with an unusable geometry or name are skipped with a log
// line rather than aborting the import.
func ImportShapefile(shapefilePath, dbPath string) (int, error) {
	if err := database.EnsureSchema(dbPath); err != nil {
		return 0, err
	}

	shape, err := shp.Open(shapefilePath)
	if err != nil {
		return 0, fmt.Errorf("opening venue shapefile: %w", err)
	}
	defer shape.Close()

	count := 0
	for shape.Next() {
		n, p := shape.Shape()

		name := shape.ReadAttribute(n, fieldName)
		if name == "" {
			log.Printf("Skipping venue record %d: no name", n)
			continue
		}

		neap, err1 := strconv.ParseFloat(shape.ReadAttribute(n, fieldNeap), 64)
		spring, err2 := strconv.ParseFloat(shape.ReadAttribute(n, fieldSpring), 64)
		if err1 != nil || err2 != nil {
			log.Printf("Skipping venue %s: unparsable current attributes", name)
			continue
		}

		polygon, ok := p.(*shp.Polygon)
		if !ok {
			log.Printf("Skipping venue %s: not a polygon", name)
			continue
		}
		bbox := polygon.BBox()
		centerLat := (bbox.MinY + bbox.MaxY) / 2
		centerLng := (bbox.MinX + bbox.MaxX) / 2

		profile := AreaProfile{
			Name:               name,
			Lat:                centerLat,
			Lng:                centerLng,
			MaxNeapCurrentKn:   neap,
			MaxSpringCurrentKn: spring,
		}
		if profile.MaxNeapCurrentKn < 0 {
			profile.MaxNeapCurrentKn = 0
		}
		if profile.MaxSpringCurrentKn < profile.MaxNeapCurrentKn {
			profile.MaxSpringCurrentKn = profile.MaxNeapCurrentKn
		}

		if err := SaveProfile(dbPath, profile); err != nil {
			log.Printf("Error saving venue %s: %v", name, err)
			continue
		}
		count++
	}

	log.Printf("Imported %d venue profiles from %s", count, shapefilePath)
	return count, nil
}
