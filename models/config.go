package models

import (
	"github.com/CPU-commits/RedInclusion/db"
	"github.com/CPU-commits/RedInclusion/settings"
)

var settingsData = settings.GetSettings()

// MongoDB
var DbConnect = db.NewConnection(
	settingsData.MONGO_HOST,
	settingsData.MONGO_DB,
)
