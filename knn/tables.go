package knn

// Column order is AFR, RPM, temperature, TPS, MAP.

// threeClassRows is the reference three-class training table.
var threeClassRows = []Sample{
	{Features{14.8, 2705, 83.9, 51.6, 108.4}, 0},
	{Features{14.1, 3093, 88.2, 50, 117.8}, 0},
	{Features{14.6, 2985, 83.8, 34.1, 113.1}, 0},
	{Features{14.3, 2703, 84.4, 45.7, 133.1}, 0},
	{Features{14.7, 3150, 80.1, 46.2, 129}, 0},
	{Features{14.4, 3539, 88.2, 38.1, 126.9}, 0},
	{Features{14.4, 3066, 86.2, 63.9, 118.9}, 0},
	{Features{14.4, 3202, 94.5, 43.4, 108.3}, 0},
	{Features{14.4, 3330, 89.1, 54.8, 135.7}, 0},
	{Features{14.5, 2989, 88.6, 45.6, 128.8}, 0},
	{Features{14.6, 2529, 79.4, 30.7, 121.7}, 0},
	{Features{14.5, 2655, 86.9, 37.8, 116.5}, 0},
	{Features{14.8, 3356, 88.2, 31.3, 139.6}, 0},
	{Features{15.1, 3527, 83.8, 56.7, 127.7}, 0},
	{Features{14.8, 2794, 96.3, 56.8, 116.1}, 0},
	{Features{14.7, 2727, 92, 28.2, 127}, 0},
	{Features{14.7, 2629, 78.4, 51.3, 123.6}, 0},
	{Features{14.5, 3245, 92, 51.7, 120.1}, 0},
	{Features{14.4, 3067, 82.6, 60.1, 109.3}, 0},
	{Features{13.9, 2864, 72.9, 26, 129.1}, 0},
	{Features{14.5, 2789, 81.7, 28.2, 141}, 0},
	{Features{14.8, 3485, 78.8, 37.9, 119.7}, 0},
	{Features{14.6, 2971, 82.3, 49.8, 119.5}, 0},
	{Features{14.2, 2820, 74.4, 38.7, 110.9}, 0},
	{Features{14.6, 2993, 80.5, 48.9, 105.9}, 0},
	{Features{14.6, 2400, 83.8, 36.8, 108}, 0},
	{Features{14.4, 3051, 91.6, 32.9, 133.7}, 0},
	{Features{14, 3379, 80.5, 37.2, 112.9}, 0},
	{Features{14.4, 3413, 84.2, 46.5, 117.9}, 0},
	{Features{14.7, 3142, 84.6, 34.8, 101.8}, 0},
	{Features{14.1, 3149, 82.7, 43.7, 150}, 0},
	{Features{14.4, 3257, 86.1, 30.1, 122.1}, 0},
	{Features{14.3, 2833, 81.8, 59.3, 137}, 0},
	{Features{14.7, 2900, 90.9, 49.4, 118.7}, 0},
	{Features{14.3, 2694, 88.5, 47.9, 113.2}, 0},
	{Features{14.2, 2994, 83.6, 48.9, 110.1}, 0},
	{Features{14.6, 3461, 84.8, 63.8, 90}, 0},
	{Features{14.4, 2799, 90.2, 37.7, 141.9}, 0},
	{Features{14.7, 2831, 88.2, 56.7, 127.5}, 0},
	{Features{13.8, 3687, 78.1, 25.3, 132.3}, 0},
	{Features{14.3, 2589, 84.6, 70, 110.4}, 0},
	{Features{14.4, 3098, 78.7, 56.1, 117.8}, 0},
	{Features{14.7, 2400, 90.7, 24.1, 115.7}, 0},
	{Features{14.8, 3196, 77.1, 62.7, 136.6}, 0},
	{Features{14.1, 2874, 83.3, 35.4, 118.1}, 0},
	{Features{14.7, 3218, 87.6, 37.3, 125.2}, 0},
	{Features{14.4, 3348, 79.6, 52.4, 127.1}, 0},
	{Features{14.3, 2696, 86.6, 34.1, 103.1}, 0},
	{Features{14.7, 2854, 95.8, 37.7, 128.9}, 0},
	{Features{14.3, 3056, 81.2, 37.7, 103.1}, 0},
	{Features{15.7, 1631, 75.5, 0, 86.2}, 1},
	{Features{14.3, 1863, 91.6, 0, 77.6}, 1},
	{Features{13.3, 2102, 76.5, 0, 96.9}, 1},
	{Features{14.7, 2001, 82.8, 0, 104.4}, 1},
	{Features{14.9, 1200, 85.7, 0, 70.3}, 1},
	{Features{13.7, 2033, 74, 0, 73.7}, 1},
	{Features{15.8, 1722, 84.8, 0, 76.4}, 1},
	{Features{14.9, 1859, 77.1, 0, 80.3}, 1},
	{Features{14.1, 1678, 74, 0, 94.8}, 1},
	{Features{14.8, 2071, 74.7, 0, 107.8}, 1},
	{Features{13.8, 1833, 92.6, 0, 89.7}, 1},
	{Features{15.3, 1458, 90.3, 0, 83.9}, 1},
	{Features{15.1, 1895, 85.8, 0, 62}, 1},
	{Features{16.1, 1831, 74.8, 0, 65}, 1},
	{Features{14, 1513, 84.8, 0, 84.3}, 1},
	{Features{13.3, 1864, 82, 0, 72.7}, 1},
	{Features{15.5, 1935, 91.5, 0, 67.3}, 1},
	{Features{15, 1625, 65, 0, 83}, 1},
	{Features{14.6, 1573, 90.4, 0, 109.8}, 1},
	{Features{15.3, 2117, 84.9, 0, 87.2}, 1},
	{Features{15.4, 1865, 86.1, 0, 110}, 1},
	{Features{14.6, 1785, 95, 0, 68.3}, 1},
	{Features{15.7, 1659, 81.3, 0, 104.9}, 1},
	{Features{16.4, 1801, 90.1, 0, 105.1}, 1},
	{Features{15.5, 2066, 75.9, 0, 85.6}, 1},
	{Features{14.1, 2136, 82, 0, 84.9}, 1},
	{Features{13, 1801, 84.6, 0, 98.9}, 1},
	{Features{14.9, 2265, 72.1, 0, 63}, 1},
	{Features{14.4, 1434, 77.9, 0, 82.8}, 1},
	{Features{16.1, 2096, 89, 0, 78.2}, 1},
	{Features{14.2, 1825, 85.7, 0, 106.8}, 1},
	{Features{14.3, 2227, 95, 0, 99.7}, 1},
	{Features{13.9, 1294, 67.6, 0, 64.7}, 1},
	{Features{16.2, 1800, 72.5, 0, 91.7}, 1},
	{Features{16, 2099, 84.2, 0, 110}, 1},
	{Features{14.3, 1745, 77.2, 0, 60}, 1},
	{Features{14.8, 1499, 87.9, 0, 77.3}, 1},
	{Features{14.4, 1861, 72.4, 0, 79.1}, 1},
	{Features{15.3, 2081, 69.1, 0, 73.6}, 1},
	{Features{13.6, 1200, 78.4, 0, 93.3}, 1},
	{Features{14.9, 1558, 75.4, 0, 92.8}, 1},
	{Features{15.2, 1724, 81, 0, 89.9}, 1},
	{Features{14.4, 1755, 81.4, 0, 78.2}, 1},
	{Features{14.4, 1656, 84.4, 0, 91.9}, 1},
	{Features{14.9, 2500, 84.9, 0, 80.3}, 1},
	{Features{16.4, 1461, 85.8, 0, 71.1}, 1},
	{Features{13.9, 2373, 71.8, 0, 87.8}, 1},
	{Features{14.5, 1977, 69.2, 0, 91.9}, 1},
	{Features{15.3, 1978, 79.2, 0, 76.4}, 1},
	{Features{15.1, 1331, 82.8, 0, 81}, 1},
	{Features{11.4, 3854, 110, 96.4, 196.8}, 2},
	{Features{11.6, 3707, 122.3, 42.2, 168}, 2},
	{Features{11.3, 4343, 99.4, 44.2, 161.4}, 2},
	{Features{11.1, 4100, 116.3, 86.2, 160.6}, 2},
	{Features{11.6, 3280, 95, 92.2, 144.3}, 2},
	{Features{11.3, 3448, 102.6, 67.3, 172.2}, 2},
	{Features{11.4, 4194, 109.1, 85, 151.7}, 2},
	{Features{11.4, 3771, 118.2, 60, 133.8}, 2},
	{Features{11.6, 4756, 127.2, 55.5, 190.2}, 2},
	{Features{11.2, 3924, 97.6, 59.8, 200}, 2},
	{Features{11.5, 3790, 125.7, 81.8, 156.6}, 2},
	{Features{11.4, 4575, 110.8, 79.6, 191.9}, 2},
	{Features{11.2, 4403, 130, 92.8, 184}, 2},
	{Features{11.4, 4873, 122.1, 72.9, 153.7}, 2},
	{Features{11.5, 3538, 95, 78.9, 193.6}, 2},
	{Features{11.1, 4597, 117.9, 65.7, 130}, 2},
	{Features{11.6, 3310, 115.2, 100, 130}, 2},
	{Features{11.7, 3724, 95, 62.7, 169.9}, 2},
	{Features{11.6, 4043, 95, 61.1, 142}, 2},
	{Features{11.2, 4189, 130, 51.6, 178}, 2},
	{Features{11.8, 4184, 97.6, 80.5, 194.9}, 2},
	{Features{11.4, 3200, 130, 92.9, 158.6}, 2},
	{Features{12, 4066, 100.6, 84.9, 130}, 2},
	{Features{11.5, 4227, 115.7, 63.1, 172.9}, 2},
	{Features{11.8, 4633, 107.2, 61.5, 137.6}, 2},
	{Features{11.2, 5011, 125, 100, 148}, 2},
	{Features{11.3, 3661, 116.3, 81.6, 168.5}, 2},
	{Features{11.4, 3782, 110.7, 73.8, 152.4}, 2},
	{Features{11.6, 4094, 125.4, 78.5, 131.6}, 2},
	{Features{11.9, 3890, 104.6, 98.6, 149.3}, 2},
	{Features{11.5, 4213, 130, 96.5, 151.3}, 2},
	{Features{11.7, 4827, 108.7, 63.2, 186.1}, 2},
	{Features{11.7, 4564, 96.5, 43.5, 134.5}, 2},
	{Features{11.5, 3200, 109.5, 87.8, 168.1}, 2},
	{Features{11.3, 3200, 108.5, 63, 140.8}, 2},
	{Features{11.7, 3982, 101.8, 86.9, 159.2}, 2},
	{Features{11.8, 3516, 95, 86.2, 169.7}, 2},
	{Features{11.9, 4737, 109.8, 100, 153.5}, 2},
	{Features{11.2, 4696, 124.6, 59.4, 170.1}, 2},
	{Features{11.8, 3306, 95, 44, 181.6}, 2},
	{Features{11.6, 3944, 106.3, 51.5, 162.4}, 2},
	{Features{11.4, 3660, 122.5, 79.2, 140.4}, 2},
	{Features{11.1, 3803, 122, 52.8, 193.7}, 2},
	{Features{11.3, 3668, 130, 99, 172.1}, 2},
	{Features{11.5, 4419, 106.2, 100, 175}, 2},
	{Features{12, 4302, 104.8, 65.1, 179.9}, 2},
	{Features{11.9, 3725, 107.6, 67.6, 131.3}, 2},
	{Features{11.8, 4096, 118.6, 90.7, 180.5}, 2},
	{Features{11.2, 4670, 130, 70, 200}, 2},
	{Features{11.6, 5031, 95, 76.9, 156.9}, 2},
}

// fourClassRows reuses the 50 normal rows of threeClassRows and adds 50
// synthesized rows per remaining class, placed around the rule thresholds:
// closed throttle below 65 degC for startup, closed throttle above 75 degC
// for maintenance, AFR 11-12 under load for critical. The normalization
// constants and checksum of FourClass are computed from these rows.
var fourClassRows = []Sample{
	{Features{14.8, 2705, 83.9, 51.6, 108.4}, 0},
	{Features{14.1, 3093, 88.2, 50, 117.8}, 0},
	{Features{14.6, 2985, 83.8, 34.1, 113.1}, 0},
	{Features{14.3, 2703, 84.4, 45.7, 133.1}, 0},
	{Features{14.7, 3150, 80.1, 46.2, 129}, 0},
	{Features{14.4, 3539, 88.2, 38.1, 126.9}, 0},
	{Features{14.4, 3066, 86.2, 63.9, 118.9}, 0},
	{Features{14.4, 3202, 94.5, 43.4, 108.3}, 0},
	{Features{14.4, 3330, 89.1, 54.8, 135.7}, 0},
	{Features{14.5, 2989, 88.6, 45.6, 128.8}, 0},
	{Features{14.6, 2529, 79.4, 30.7, 121.7}, 0},
	{Features{14.5, 2655, 86.9, 37.8, 116.5}, 0},
	{Features{14.8, 3356, 88.2, 31.3, 139.6}, 0},
	{Features{15.1, 3527, 83.8, 56.7, 127.7}, 0},
	{Features{14.8, 2794, 96.3, 56.8, 116.1}, 0},
	{Features{14.7, 2727, 92, 28.2, 127}, 0},
	{Features{14.7, 2629, 78.4, 51.3, 123.6}, 0},
	{Features{14.5, 3245, 92, 51.7, 120.1}, 0},
	{Features{14.4, 3067, 82.6, 60.1, 109.3}, 0},
	{Features{13.9, 2864, 72.9, 26, 129.1}, 0},
	{Features{14.5, 2789, 81.7, 28.2, 141}, 0},
	{Features{14.8, 3485, 78.8, 37.9, 119.7}, 0},
	{Features{14.6, 2971, 82.3, 49.8, 119.5}, 0},
	{Features{14.2, 2820, 74.4, 38.7, 110.9}, 0},
	{Features{14.6, 2993, 80.5, 48.9, 105.9}, 0},
	{Features{14.6, 2400, 83.8, 36.8, 108}, 0},
	{Features{14.4, 3051, 91.6, 32.9, 133.7}, 0},
	{Features{14, 3379, 80.5, 37.2, 112.9}, 0},
	{Features{14.4, 3413, 84.2, 46.5, 117.9}, 0},
	{Features{14.7, 3142, 84.6, 34.8, 101.8}, 0},
	{Features{14.1, 3149, 82.7, 43.7, 150}, 0},
	{Features{14.4, 3257, 86.1, 30.1, 122.1}, 0},
	{Features{14.3, 2833, 81.8, 59.3, 137}, 0},
	{Features{14.7, 2900, 90.9, 49.4, 118.7}, 0},
	{Features{14.3, 2694, 88.5, 47.9, 113.2}, 0},
	{Features{14.2, 2994, 83.6, 48.9, 110.1}, 0},
	{Features{14.6, 3461, 84.8, 63.8, 90}, 0},
	{Features{14.4, 2799, 90.2, 37.7, 141.9}, 0},
	{Features{14.7, 2831, 88.2, 56.7, 127.5}, 0},
	{Features{13.8, 3687, 78.1, 25.3, 132.3}, 0},
	{Features{14.3, 2589, 84.6, 70, 110.4}, 0},
	{Features{14.4, 3098, 78.7, 56.1, 117.8}, 0},
	{Features{14.7, 2400, 90.7, 24.1, 115.7}, 0},
	{Features{14.8, 3196, 77.1, 62.7, 136.6}, 0},
	{Features{14.1, 2874, 83.3, 35.4, 118.1}, 0},
	{Features{14.7, 3218, 87.6, 37.3, 125.2}, 0},
	{Features{14.4, 3348, 79.6, 52.4, 127.1}, 0},
	{Features{14.3, 2696, 86.6, 34.1, 103.1}, 0},
	{Features{14.7, 2854, 95.8, 37.7, 128.9}, 0},
	{Features{14.3, 3056, 81.2, 37.7, 103.1}, 0},
	{Features{13.1, 1091, 51.4, 0, 50.4}, 1},
	{Features{12.7, 1304, 29.3, 0, 46.2}, 1},
	{Features{13.4, 1035, 48.4, 0, 57.6}, 1},
	{Features{13.2, 1586, 29.7, 0, 52.3}, 1},
	{Features{13.4, 1343, 48.2, 0, 57.8}, 1},
	{Features{13.5, 1223, 47.7, 0, 59}, 1},
	{Features{13.3, 1319, 56, 3.7, 50.3}, 1},
	{Features{12.9, 1108, 56.1, 0, 55.9}, 1},
	{Features{13.8, 1438, 38.4, 0, 55.4}, 1},
	{Features{12.8, 1205, 61.6, 0, 64}, 1},
	{Features{13.4, 1525, 39.3, 5.6, 57.7}, 1},
	{Features{13.2, 1504, 62, 0, 40.1}, 1},
	{Features{13.6, 1388, 63.8, 0, 62.4}, 1},
	{Features{13.8, 1208, 61.9, 0, 54.8}, 1},
	{Features{12.9, 1172, 54.6, 3.2, 40.7}, 1},
	{Features{13.2, 1330, 59.8, 0, 62}, 1},
	{Features{14, 1410, 41.7, 0, 44}, 1},
	{Features{12.9, 1140, 45.5, 0, 47.6}, 1},
	{Features{12.8, 1321, 50, 0, 61.5}, 1},
	{Features{13.3, 1371, 52.3, 0.4, 51.5}, 1},
	{Features{13.2, 1289, 42.4, 0, 53}, 1},
	{Features{12.8, 1360, 31.7, 0, 70.3}, 1},
	{Features{13.5, 1042, 35.5, 0, 70.5}, 1},
	{Features{13.4, 1284, 32.2, 3.9, 54.3}, 1},
	{Features{13, 1086, 55, 5.9, 66.2}, 1},
	{Features{12.8, 1014, 62.2, 0, 61.5}, 1},
	{Features{13.9, 1455, 38.7, 0, 61.7}, 1},
	{Features{13, 1220, 34, 0, 59.6}, 1},
	{Features{13.5, 1473, 55.3, 0, 65.8}, 1},
	{Features{13.6, 1136, 46.6, 0, 71.6}, 1},
	{Features{13.7, 1283, 35, 0, 53.2}, 1},
	{Features{13.9, 1593, 62.4, 0, 41.5}, 1},
	{Features{13.3, 1203, 45.4, 0, 54.3}, 1},
	{Features{13.5, 1480, 31.1, 5.3, 64.6}, 1},
	{Features{13.7, 1287, 34.4, 0, 40.9}, 1},
	{Features{13.9, 1433, 44.7, 0, 62.6}, 1},
	{Features{12.8, 1076, 33.4, 0, 58.8}, 1},
	{Features{13.4, 1285, 61.7, 0, 38.7}, 1},
	{Features{13.7, 1436, 31.7, 0, 52.7}, 1},
	{Features{13.8, 1496, 35.6, 0, 55}, 1},
	{Features{13.7, 1196, 47.6, 0, 68.9}, 1},
	{Features{13.1, 1275, 49, 7.2, 66.1}, 1},
	{Features{13.8, 1078, 33.5, 4.1, 64.4}, 1},
	{Features{13.5, 1466, 33.4, 0, 56.9}, 1},
	{Features{13.1, 1311, 48, 0, 68}, 1},
	{Features{12.7, 1115, 29.5, 0.8, 57.1}, 1},
	{Features{13.7, 1547, 44, 0, 61.6}, 1},
	{Features{13.2, 1320, 45.2, 0, 69.4}, 1},
	{Features{13.8, 1122, 44.1, 3.3, 53}, 1},
	{Features{12.7, 1144, 30.6, 0, 68.5}, 1},
	{Features{15.7, 1631, 75.5, 0, 86.2}, 2},
	{Features{14.3, 1863, 91.6, 0, 77.6}, 2},
	{Features{13.3, 2102, 76.5, 0, 96.9}, 2},
	{Features{14.7, 2001, 82.8, 0, 104.4}, 2},
	{Features{14.9, 1200, 85.7, 0, 70.3}, 2},
	{Features{13.7, 2033, 74, 0, 73.7}, 2},
	{Features{15.8, 1722, 84.8, 0, 76.4}, 2},
	{Features{14.9, 1859, 77.1, 0, 80.3}, 2},
	{Features{14.1, 1678, 74, 0, 94.8}, 2},
	{Features{14.8, 2071, 74.7, 0, 107.8}, 2},
	{Features{13.8, 1833, 92.6, 0, 89.7}, 2},
	{Features{15.3, 1458, 90.3, 0, 83.9}, 2},
	{Features{15.1, 1895, 85.8, 0, 62}, 2},
	{Features{16.1, 1831, 74.8, 0, 65}, 2},
	{Features{14, 1513, 84.8, 0, 84.3}, 2},
	{Features{13.3, 1864, 82, 0, 72.7}, 2},
	{Features{15.5, 1935, 91.5, 0, 67.3}, 2},
	{Features{15, 1625, 65, 0, 83}, 2},
	{Features{14.6, 1573, 90.4, 0, 109.8}, 2},
	{Features{15.3, 2117, 84.9, 0, 87.2}, 2},
	{Features{15.4, 1865, 86.1, 0, 110}, 2},
	{Features{14.6, 1785, 95, 0, 68.3}, 2},
	{Features{15.7, 1659, 81.3, 0, 104.9}, 2},
	{Features{16.4, 1801, 90.1, 0, 105.1}, 2},
	{Features{15.5, 2066, 75.9, 0, 85.6}, 2},
	{Features{14.1, 2136, 82, 0, 84.9}, 2},
	{Features{13, 1801, 84.6, 0, 98.9}, 2},
	{Features{14.9, 2265, 72.1, 0, 63}, 2},
	{Features{14.4, 1434, 77.9, 0, 82.8}, 2},
	{Features{16.1, 2096, 89, 0, 78.2}, 2},
	{Features{14.2, 1825, 85.7, 0, 106.8}, 2},
	{Features{14.3, 2227, 95, 0, 99.7}, 2},
	{Features{13.9, 1294, 67.6, 0, 64.7}, 2},
	{Features{16.2, 1800, 72.5, 0, 91.7}, 2},
	{Features{16, 2099, 84.2, 0, 110}, 2},
	{Features{14.3, 1745, 77.2, 0, 60}, 2},
	{Features{14.8, 1499, 87.9, 0, 77.3}, 2},
	{Features{14.4, 1861, 72.4, 0, 79.1}, 2},
	{Features{15.3, 2081, 69.1, 0, 73.6}, 2},
	{Features{13.6, 1200, 78.4, 0, 93.3}, 2},
	{Features{14.9, 1558, 75.4, 0, 92.8}, 2},
	{Features{15.2, 1724, 81, 0, 89.9}, 2},
	{Features{14.4, 1755, 81.4, 0, 78.2}, 2},
	{Features{14.4, 1656, 84.4, 0, 91.9}, 2},
	{Features{14.9, 2500, 84.9, 0, 80.3}, 2},
	{Features{16.4, 1461, 85.8, 0, 71.1}, 2},
	{Features{13.9, 2373, 71.8, 0, 87.8}, 2},
	{Features{14.5, 1977, 69.2, 0, 91.9}, 2},
	{Features{15.3, 1978, 79.2, 0, 76.4}, 2},
	{Features{15.1, 1331, 82.8, 0, 81}, 2},
	{Features{11.4, 3854, 110, 96.4, 196.8}, 3},
	{Features{11.6, 3707, 122.3, 42.2, 168}, 3},
	{Features{11.3, 4343, 99.4, 44.2, 161.4}, 3},
	{Features{11.1, 4100, 116.3, 86.2, 160.6}, 3},
	{Features{11.6, 3280, 95, 92.2, 144.3}, 3},
	{Features{11.3, 3448, 102.6, 67.3, 172.2}, 3},
	{Features{11.4, 4194, 109.1, 85, 151.7}, 3},
	{Features{11.4, 3771, 118.2, 60, 133.8}, 3},
	{Features{11.6, 4756, 127.2, 55.5, 190.2}, 3},
	{Features{11.2, 3924, 97.6, 59.8, 200}, 3},
	{Features{11.5, 3790, 125.7, 81.8, 156.6}, 3},
	{Features{11.4, 4575, 110.8, 79.6, 191.9}, 3},
	{Features{11.2, 4403, 130, 92.8, 184}, 3},
	{Features{11.4, 4873, 122.1, 72.9, 153.7}, 3},
	{Features{11.5, 3538, 95, 78.9, 193.6}, 3},
	{Features{11.1, 4597, 117.9, 65.7, 130}, 3},
	{Features{11.6, 3310, 115.2, 100, 130}, 3},
	{Features{11.7, 3724, 95, 62.7, 169.9}, 3},
	{Features{11.6, 4043, 95, 61.1, 142}, 3},
	{Features{11.2, 4189, 130, 51.6, 178}, 3},
	{Features{11.8, 4184, 97.6, 80.5, 194.9}, 3},
	{Features{11.4, 3200, 130, 92.9, 158.6}, 3},
	{Features{12, 4066, 100.6, 84.9, 130}, 3},
	{Features{11.5, 4227, 115.7, 63.1, 172.9}, 3},
	{Features{11.8, 4633, 107.2, 61.5, 137.6}, 3},
	{Features{11.2, 5011, 125, 100, 148}, 3},
	{Features{11.3, 3661, 116.3, 81.6, 168.5}, 3},
	{Features{11.4, 3782, 110.7, 73.8, 152.4}, 3},
	{Features{11.6, 4094, 125.4, 78.5, 131.6}, 3},
	{Features{11.9, 3890, 104.6, 98.6, 149.3}, 3},
	{Features{11.5, 4213, 130, 96.5, 151.3}, 3},
	{Features{11.7, 4827, 108.7, 63.2, 186.1}, 3},
	{Features{11.7, 4564, 96.5, 43.5, 134.5}, 3},
	{Features{11.5, 3200, 109.5, 87.8, 168.1}, 3},
	{Features{11.3, 3200, 108.5, 63, 140.8}, 3},
	{Features{11.7, 3982, 101.8, 86.9, 159.2}, 3},
	{Features{11.8, 3516, 95, 86.2, 169.7}, 3},
	{Features{11.9, 4737, 109.8, 100, 153.5}, 3},
	{Features{11.2, 4696, 124.6, 59.4, 170.1}, 3},
	{Features{11.8, 3306, 95, 44, 181.6}, 3},
	{Features{11.6, 3944, 106.3, 51.5, 162.4}, 3},
	{Features{11.4, 3660, 122.5, 79.2, 140.4}, 3},
	{Features{11.1, 3803, 122, 52.8, 193.7}, 3},
	{Features{11.3, 3668, 130, 99, 172.1}, 3},
	{Features{11.5, 4419, 106.2, 100, 175}, 3},
	{Features{12, 4302, 104.8, 65.1, 179.9}, 3},
	{Features{11.9, 3725, 107.6, 67.6, 131.3}, 3},
	{Features{11.8, 4096, 118.6, 90.7, 180.5}, 3},
	{Features{11.2, 4670, 130, 70, 200}, 3},
	{Features{11.6, 5031, 95, 76.9, 156.9}, 3},
}
