package geo

// usCities is the bundled gazetteer of US cities, boroughs and music
// towns, keyed by normalized name. It covers the vast majority of
// lookups so the external geocoder stays a cold path.
var usCities = map[string]Coordinates{
	"new york":         {Lat: 40.7128, Lng: -74.0060},
	"new york city":    {Lat: 40.7128, Lng: -74.0060},
	"nyc":              {Lat: 40.7128, Lng: -74.0060},
	"los angeles":      {Lat: 34.0522, Lng: -118.2437},
	"la":               {Lat: 34.0522, Lng: -118.2437},
	"chicago":          {Lat: 41.8781, Lng: -87.6298},
	"houston":          {Lat: 29.7604, Lng: -95.3698},
	"phoenix":          {Lat: 33.4484, Lng: -112.0740},
	"philadelphia":     {Lat: 39.9526, Lng: -75.1652},
	"san antonio":      {Lat: 29.4241, Lng: -98.4936},
	"san diego":        {Lat: 32.7157, Lng: -117.1611},
	"dallas":           {Lat: 32.7767, Lng: -96.7970},
	"san jose":         {Lat: 37.3382, Lng: -121.8863},
	"austin":           {Lat: 30.2672, Lng: -97.7431},
	"jacksonville":     {Lat: 30.3322, Lng: -81.6557},
	"fort worth":       {Lat: 32.7555, Lng: -97.3308},
	"columbus":         {Lat: 39.9612, Lng: -82.9988},
	"charlotte":        {Lat: 35.2271, Lng: -80.8431},
	"indianapolis":     {Lat: 39.7684, Lng: -86.1581},
	"san francisco":    {Lat: 37.7749, Lng: -122.4194},
	"sf":               {Lat: 37.7749, Lng: -122.4194},
	"seattle":          {Lat: 47.6062, Lng: -122.3321},
	"denver":           {Lat: 39.7392, Lng: -104.9903},
	"washington":       {Lat: 38.9072, Lng: -77.0369},
	"washington dc":    {Lat: 38.9072, Lng: -77.0369},
	"dc":               {Lat: 38.9072, Lng: -77.0369},
	"nashville":        {Lat: 36.1627, Lng: -86.7816},
	"oklahoma city":    {Lat: 35.4676, Lng: -97.5164},
	"el paso":          {Lat: 31.7619, Lng: -106.4850},
	"boston":           {Lat: 42.3601, Lng: -71.0589},
	"portland":         {Lat: 45.5152, Lng: -122.6784},
	"las vegas":        {Lat: 36.1699, Lng: -115.1398},
	"vegas":            {Lat: 36.1699, Lng: -115.1398},
	"memphis":          {Lat: 35.1495, Lng: -90.0490},
	"louisville":       {Lat: 38.2527, Lng: -85.7585},
	"baltimore":        {Lat: 39.2904, Lng: -76.6122},
	"milwaukee":        {Lat: 43.0389, Lng: -87.9065},
	"albuquerque":      {Lat: 35.0844, Lng: -106.6504},
	"tucson":           {Lat: 32.2226, Lng: -110.9747},
	"fresno":           {Lat: 36.7378, Lng: -119.7871},
	"sacramento":       {Lat: 38.5816, Lng: -121.4944},
	"mesa":             {Lat: 33.4152, Lng: -111.8315},
	"kansas city":      {Lat: 39.0997, Lng: -94.5786},
	"atlanta":          {Lat: 33.7490, Lng: -84.3880},
	"omaha":            {Lat: 41.2565, Lng: -95.9345},
	"colorado springs": {Lat: 38.8339, Lng: -104.8214},
	"raleigh":          {Lat: 35.7796, Lng: -78.6382},
	"long beach":       {Lat: 33.7701, Lng: -118.1937},
	"virginia beach":   {Lat: 36.8529, Lng: -75.9780},
	"miami":            {Lat: 25.7617, Lng: -80.1918},
	"oakland":          {Lat: 37.8044, Lng: -122.2712},
	"minneapolis":      {Lat: 44.9778, Lng: -93.2650},
	"tulsa":            {Lat: 36.1540, Lng: -95.9928},
	"tampa":            {Lat: 27.9506, Lng: -82.4572},
	"arlington":        {Lat: 32.7357, Lng: -97.1081},
	"new orleans":      {Lat: 29.9511, Lng: -90.0715},
	"cleveland":        {Lat: 41.4993, Lng: -81.6944},
	"bakersfield":      {Lat: 35.3733, Lng: -119.0187},
	"aurora":           {Lat: 39.7294, Lng: -104.8319},
	"anaheim":          {Lat: 33.8366, Lng: -117.9143},
	"honolulu":         {Lat: 21.3069, Lng: -157.8583},
	"santa ana":        {Lat: 33.7455, Lng: -117.8677},
	"riverside":        {Lat: 33.9806, Lng: -117.3755},
	"corpus christi":   {Lat: 27.8006, Lng: -97.3964},
	"lexington":        {Lat: 38.0406, Lng: -84.5037},
	"pittsburgh":       {Lat: 40.4406, Lng: -79.9959},
	"anchorage":        {Lat: 61.2181, Lng: -149.9003},
	"stockton":         {Lat: 37.9577, Lng: -121.2908},
	"cincinnati":       {Lat: 39.1031, Lng: -84.5120},
	"saint paul":       {Lat: 44.9537, Lng: -93.0900},
	"st paul":          {Lat: 44.9537, Lng: -93.0900},
	"toledo":           {Lat: 41.6528, Lng: -83.5379},
	"newark":           {Lat: 40.7357, Lng: -74.1724},
	"greensboro":       {Lat: 36.0726, Lng: -79.7920},
	"buffalo":          {Lat: 42.8864, Lng: -78.8784},
	"plano":            {Lat: 33.0198, Lng: -96.6989},
	"lincoln":          {Lat: 40.8258, Lng: -96.6852},
	"henderson":        {Lat: 36.0395, Lng: -114.9817},
	"fort wayne":       {Lat: 41.0793, Lng: -85.1394},
	"jersey city":      {Lat: 40.7178, Lng: -74.0431},
	"st louis":         {Lat: 38.6270, Lng: -90.1994},
	"saint louis":      {Lat: 38.6270, Lng: -90.1994},
	"chula vista":      {Lat: 32.6401, Lng: -117.0842},
	"norfolk":          {Lat: 36.8508, Lng: -76.2859},
	"orlando":          {Lat: 28.5383, Lng: -81.3792},
	"chandler":         {Lat: 33.3062, Lng: -111.8413},
	"laredo":           {Lat: 27.5036, Lng: -99.5076},
	"madison":          {Lat: 43.0731, Lng: -89.4012},
	"lubbock":          {Lat: 33.5779, Lng: -101.8552},
	"winston-salem":    {Lat: 36.0999, Lng: -80.2442},
	"baton rouge":      {Lat: 30.4515, Lng: -91.1871},
	"durham":           {Lat: 35.9940, Lng: -78.8986},
	"garland":          {Lat: 32.9126, Lng: -96.6389},
	"glendale":         {Lat: 33.5387, Lng: -112.1860},
	"reno":             {Lat: 39.5296, Lng: -119.8138},
	"hialeah":          {Lat: 25.8576, Lng: -80.2781},
	"chesapeake":       {Lat: 36.7682, Lng: -76.2875},
	"scottsdale":       {Lat: 33.4942, Lng: -111.9261},
	"irving":           {Lat: 32.8140, Lng: -96.9489},
	"fremont":          {Lat: 37.5485, Lng: -121.9886},
	"irvine":           {Lat: 33.6846, Lng: -117.8265},
	"birmingham":       {Lat: 33.5186, Lng: -86.8104},
	"richmond":         {Lat: 37.5407, Lng: -77.4360},
	"spokane":          {Lat: 47.6588, Lng: -117.4260},
	"rochester":        {Lat: 43.1566, Lng: -77.6088},
	"san bernardino":   {Lat: 34.1083, Lng: -117.2898},
	"tacoma":           {Lat: 47.2529, Lng: -122.4443},
	"salt lake city":   {Lat: 40.7608, Lng: -111.8910},
	"slc":              {Lat: 40.7608, Lng: -111.8910},
	"des moines":       {Lat: 41.5868, Lng: -93.6250},
	"detroit":          {Lat: 42.3314, Lng: -83.0458},
	"savannah":         {Lat: 32.0809, Lng: -81.0912},
	"charleston":       {Lat: 32.7765, Lng: -79.9311},
	"asheville":        {Lat: 35.5951, Lng: -82.5515},
	"boulder":          {Lat: 40.0150, Lng: -105.2705},
	"ann arbor":        {Lat: 42.2808, Lng: -83.7430},
	"athens":           {Lat: 33.9519, Lng: -83.3576},
	"knoxville":        {Lat: 35.9606, Lng: -83.9207},
	"chattanooga":      {Lat: 35.0456, Lng: -85.3097},
	"roanoke":          {Lat: 37.2710, Lng: -79.9414},
	"harrisonburg":     {Lat: 38.4496, Lng: -78.8689},
	"lynchburg":        {Lat: 37.4138, Lng: -79.1422},
	"charlottesville":  {Lat: 38.0293, Lng: -78.4767},
	"blacksburg":       {Lat: 37.2296, Lng: -80.4139},
	"brooklyn":         {Lat: 40.6782, Lng: -73.9442},
	"manhattan":        {Lat: 40.7831, Lng: -73.9712},
	"queens":           {Lat: 40.7282, Lng: -73.7949},
	"bronx":            {Lat: 40.8448, Lng: -73.8648},
	"staten island":    {Lat: 40.5795, Lng: -74.1502},
	"hoboken":          {Lat: 40.7440, Lng: -74.0324},
	"williamsburg":     {Lat: 40.7081, Lng: -73.9571},
	"santa monica":     {Lat: 34.0195, Lng: -118.4912},
	"silver lake":      {Lat: 34.0869, Lng: -118.2702},
	"echo park":        {Lat: 34.0782, Lng: -118.2606},
	"hollywood":        {Lat: 34.0928, Lng: -118.3287},
	"west hollywood":   {Lat: 34.0900, Lng: -118.3617},
	"venice":           {Lat: 33.9850, Lng: -118.4695},
	"pasadena":         {Lat: 34.1478, Lng: -118.1445},
	"tempe":            {Lat: 33.4255, Lng: -111.9400},
	"berkeley":         {Lat: 37.8716, Lng: -122.2727},
	"santa cruz":       {Lat: 36.9741, Lng: -122.0308},
	"eugene":           {Lat: 44.0521, Lng: -123.0868},
	"boise":            {Lat: 43.6150, Lng: -116.2023},
	"columbia":         {Lat: 34.0007, Lng: -81.0348},
	"greenville":       {Lat: 34.8526, Lng: -82.3940},
	"wilmington":       {Lat: 34.2257, Lng: -77.9447},
	"providence":       {Lat: 41.8240, Lng: -71.4128},
	"hartford":         {Lat: 41.7658, Lng: -72.6734},
	"new haven":        {Lat: 41.3083, Lng: -72.9279},
	"burlington":       {Lat: 44.4759, Lng: -73.2121},
	"ithaca":           {Lat: 42.4440, Lng: -76.5019},
	"saratoga springs": {Lat: 43.0831, Lng: -73.7846},
	"albany":           {Lat: 42.6526, Lng: -73.7562},
	"syracuse":         {Lat: 43.0481, Lng: -76.1474},
	"santa fe":         {Lat: 35.6870, Lng: -105.9378},
	"taos":             {Lat: 36.4072, Lng: -105.5731},
	"jackson":          {Lat: 32.2988, Lng: -90.1848},
	"little rock":      {Lat: 34.7465, Lng: -92.2896},
	"pensacola":        {Lat: 30.4213, Lng: -87.2169},
	"gainesville":      {Lat: 29.6516, Lng: -82.3248},
	"tallahassee":      {Lat: 30.4383, Lng: -84.2807},
	"st petersburg":    {Lat: 27.7676, Lng: -82.6403},
	"fort lauderdale":  {Lat: 26.1224, Lng: -80.1373},
	"west palm beach":  {Lat: 26.7153, Lng: -80.0534},
	"dayton":           {Lat: 39.7589, Lng: -84.1916},
	"akron":            {Lat: 41.0814, Lng: -81.5190},
	"youngstown":       {Lat: 41.0998, Lng: -80.6495},
	"springfield":      {Lat: 39.9242, Lng: -83.8088},
	"wichita":          {Lat: 37.6872, Lng: -97.3301},
	"sioux falls":      {Lat: 43.5446, Lng: -96.7311},
	"fargo":            {Lat: 46.8772, Lng: -96.7898},
	"duluth":           {Lat: 46.7867, Lng: -92.1005},
	"grand rapids":     {Lat: 42.9634, Lng: -85.6681},
	"lansing":          {Lat: 42.7325, Lng: -84.5555},
	"kalamazoo":        {Lat: 42.2917, Lng: -85.5872},
	"traverse city":    {Lat: 44.7631, Lng: -85.6206},
	"eau claire":       {Lat: 44.8113, Lng: -91.4985},
	"missoula":         {Lat: 46.8721, Lng: -113.9940},
	"billings":         {Lat: 45.7833, Lng: -108.5007},
	"flagstaff":        {Lat: 35.1983, Lng: -111.6513},
	"sedona":           {Lat: 34.8697, Lng: -111.7610},
	"mobile":           {Lat: 30.6954, Lng: -88.0399},
	"huntsville":       {Lat: 34.7304, Lng: -86.5861},
	"montgomery":       {Lat: 32.3792, Lng: -86.3077},
	"myrtle beach":     {Lat: 33.6891, Lng: -78.8867},
	"hilton head":      {Lat: 32.2163, Lng: -80.7526},
	"key west":         {Lat: 24.5551, Lng: -81.7800},
	"napa":             {Lat: 38.2975, Lng: -122.2869},
	"sonoma":           {Lat: 38.2920, Lng: -122.4580},
	"paso robles":      {Lat: 35.6267, Lng: -120.6910},
	"newport":          {Lat: 41.4901, Lng: -71.3128},
	"cape cod":         {Lat: 41.6688, Lng: -70.2962},
	"portland me":      {Lat: 43.6591, Lng: -70.2568},
	"bar harbor":       {Lat: 44.3876, Lng: -68.2039},
	"bloomington":      {Lat: 39.1653, Lng: -86.5264},
	"lawrence":         {Lat: 38.9717, Lng: -95.2353},
}
